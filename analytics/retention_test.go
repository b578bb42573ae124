package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRetention(t *testing.T) {
	records := []Record{
		{CustomerID: "c1"},
		{CustomerID: "c1"},
		{CustomerID: "c2"},
		{CustomerID: "c3"},
		{CustomerID: "c3"},
		{CustomerID: "c3"},
	}

	split := Retention(records)

	assert.Equal(t, 1, split.New)
	assert.Equal(t, 2, split.Returning)
}

func TestRetention_EveryCustomerCounted(t *testing.T) {
	records := []Record{
		{CustomerID: "c1"},
		{CustomerID: "c2"},
		{CustomerID: "c2"},
		{CustomerID: ""}, // anonymous rows are not customers
		{CustomerID: "c3"},
	}

	split := Retention(records)

	distinct := 3
	assert.Equal(t, distinct, split.New+split.Returning, "split partitions all distinct customers")
}

func TestRetention_Empty(t *testing.T) {
	split := Retention(nil)
	assert.Zero(t, split.New)
	assert.Zero(t, split.Returning)
}
