package utils

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sliceFetch pages over an in-memory dataset the way the store would.
func sliceFetch(data []int) PageFunc[int] {
	return func(limit, offset int) ([]int, error) {
		if offset >= len(data) {
			return nil, nil
		}
		end := offset + limit
		if end > len(data) {
			end = len(data)
		}
		return data[offset:end], nil
	}
}

func TestCursor_PagesInFixedBatches(t *testing.T) {
	data := make([]int, 2500)
	for i := range data {
		data[i] = i
	}
	cursor := NewCursor(sliceFetch(data))

	page1, ok, err := cursor.Next()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Len(t, page1, PageSize)
	assert.Equal(t, 0, page1[0])

	page2, ok, err := cursor.Next()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, PageSize, page2[0], "second page resumes where the first ended")

	page3, ok, err := cursor.Next()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Len(t, page3, 500, "short final page")

	_, ok, err = cursor.Next()
	require.NoError(t, err)
	assert.False(t, ok, "cursor is exhausted after the short page")
}

func TestCursor_Reset(t *testing.T) {
	data := []int{1, 2, 3}
	cursor := NewCursor(sliceFetch(data))

	first, _, err := cursor.Next()
	require.NoError(t, err)
	_, ok, err := cursor.Next()
	require.NoError(t, err)
	require.False(t, ok)

	cursor.Reset()
	again, ok, err := cursor.Next()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, first, again)
}

func TestCursor_All(t *testing.T) {
	data := make([]int, 1500)
	for i := range data {
		data[i] = i
	}

	all, err := NewCursor(sliceFetch(data)).All()
	require.NoError(t, err)
	assert.Equal(t, data, all)
}

func TestCursor_AllEmpty(t *testing.T) {
	all, err := NewCursor(sliceFetch(nil)).All()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestCursor_PropagatesFetchError(t *testing.T) {
	boom := errors.New("connection reset")
	cursor := NewCursor(func(limit, offset int) ([]int, error) {
		return nil, boom
	})

	_, ok, err := cursor.Next()
	assert.False(t, ok)
	assert.ErrorIs(t, err, boom)

	_, err = NewCursor(func(limit, offset int) ([]int, error) {
		return nil, boom
	}).All()
	assert.ErrorIs(t, err, boom)
}
