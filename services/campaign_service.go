// services/campaign_service.go
package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gopkg.in/gomail.v2"
	"gorm.io/gorm"

	"sejenak-backend/config"
	"sejenak-backend/models"
	"sejenak-backend/utils"
)

// emailBatchSize caps recipients per SMTP send.
const emailBatchSize = 1000

// Mailer sends prepared messages. *gomail.Dialer satisfies it.
type Mailer interface {
	DialAndSend(m ...*gomail.Message) error
}

// CampaignService delivers promotional blasts over email (SMTP) or
// SMS/WhatsApp (Twilio), honoring each customer's communication preferences.
type CampaignService struct {
	db     *gorm.DB
	mailer Mailer
	client *twilio.RestClient
	cfg    config.Config
}

func NewCampaignService(db *gorm.DB, cfg config.Config) *CampaignService {
	return &CampaignService{
		db:     db,
		mailer: gomail.NewDialer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.User, cfg.SMTP.Password),
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: cfg.Twilio.AccountSID,
			Password: cfg.Twilio.AuthToken,
		}),
		cfg: cfg,
	}
}

// NewCampaignServiceWithMailer injects a custom mailer. Primarily for tests.
func NewCampaignServiceWithMailer(db *gorm.DB, cfg config.Config, mailer Mailer) *CampaignService {
	s := NewCampaignService(db, cfg)
	s.mailer = mailer
	return s
}

// ShouldNotify decides whether a customer may be contacted for the given
// preference key. The notification_settings map overrides the legacy
// preferences map per key; an explicit false (boolean or the string "false")
// suppresses sending and any other value, including absence, permits it.
func ShouldNotify(customer models.Customer, key string) bool {
	if v, ok := customer.NotificationSettings[key]; ok {
		return !isExplicitFalse(v)
	}
	if v, ok := customer.Preferences[key]; ok {
		return !isExplicitFalse(v)
	}
	return true
}

func isExplicitFalse(v interface{}) bool {
	switch val := v.(type) {
	case bool:
		return !val
	case string:
		return val == "false"
	default:
		return false
	}
}

// StartScheduler runs the daily birthday greeting job.
func (s *CampaignService) StartScheduler() {
	c := cron.New()

	// Every morning at 9 AM
	c.AddFunc("0 9 * * *", s.SendBirthdayGreetings)

	c.Start()
	log.Info().Msg("Campaign scheduler started")
}

// SendBirthdayGreetings messages every active customer whose birthday is
// today. The "birthday" preference key gates sending, like "promotions" does
// for blasts.
func (s *CampaignService) SendBirthdayGreetings() {
	log.Info().Msg("Sending birthday greetings...")

	now := time.Now()
	var customers []models.Customer
	err := s.db.Where(
		"is_active = true AND birthday IS NOT NULL AND EXTRACT(MONTH FROM birthday) = ? AND EXTRACT(DAY FROM birthday) = ?",
		int(now.Month()), now.Day()).Find(&customers).Error
	if err != nil {
		log.Error().Err(err).Msg("Failed to fetch birthday customers")
		return
	}

	sent := 0
	for _, customer := range customers {
		if customer.Phone == "" || !utils.ValidatePhone(customer.Phone) {
			continue
		}
		if !ShouldNotify(customer, "birthday") {
			continue
		}

		to := customer.Phone
		from := s.cfg.Twilio.PhoneNumber
		if len(to) > 0 && to[0] == '+' {
			to = "whatsapp:" + to
			from = "whatsapp:" + s.cfg.Twilio.WhatsAppNumber
		}

		params := &twilioApi.CreateMessageParams{}
		params.SetTo(to)
		params.SetFrom(from)
		params.SetBody(fmt.Sprintf("Happy birthday, %s! Treat yourself today at Sejenak.", customer.Name))

		if _, err := s.client.Api.CreateMessage(params); err != nil {
			log.Error().Err(err).Str("phone", customer.Phone).Msg("Failed to send greeting")
			continue
		}
		sent++
	}

	log.Info().Int("sent", sent).Msg("Birthday greetings completed")
}

// BlastResult summarizes one campaign delivery.
type BlastResult struct {
	Recipients int    `json:"recipients"`
	Skipped    int    `json:"skipped"`
	Status     string `json:"status"`
}

// SendEmailBlast emails every contactable customer of the branch in batches.
// Recipients without a valid address or with promotions switched off are
// skipped, and the delivery is recorded in the campaign log.
func (s *CampaignService) SendEmailBlast(branchID uuid.UUID, subject, htmlBody string) (*BlastResult, error) {
	customers, skipped, err := s.recipients(branchID, func(c models.Customer) bool {
		return c.Email != "" && utils.ValidateEmail(c.Email)
	})
	if err != nil {
		return nil, err
	}

	sent := 0
	errorMsg := ""
	for start := 0; start < len(customers); start += emailBatchSize {
		end := start + emailBatchSize
		if end > len(customers) {
			end = len(customers)
		}
		addresses := make([]string, 0, end-start)
		for _, c := range customers[start:end] {
			addresses = append(addresses, c.Email)
		}

		m := gomail.NewMessage()
		m.SetHeader("From", s.cfg.SMTP.From)
		m.SetHeader("Bcc", addresses...)
		m.SetHeader("Subject", subject)
		m.SetBody("text/html", htmlBody)

		if err := s.mailer.DialAndSend(m); err != nil {
			log.Error().Err(err).Int("batch", start/emailBatchSize).Msg("Email batch failed")
			errorMsg = err.Error()
			continue
		}
		sent += len(addresses)
	}

	result := &BlastResult{Recipients: sent, Skipped: skipped, Status: blastStatus(sent, len(customers))}
	s.logCampaign(branchID, subject, "email", result, errorMsg)
	return result, nil
}

// SendSMSBlast delivers the campaign over SMS, or WhatsApp for numbers in
// E.164 format, one message per recipient.
func (s *CampaignService) SendSMSBlast(branchID uuid.UUID, subject, body string) (*BlastResult, error) {
	customers, skipped, err := s.recipients(branchID, func(c models.Customer) bool {
		return c.Phone != "" && utils.ValidatePhone(c.Phone)
	})
	if err != nil {
		return nil, err
	}

	sent := 0
	errorMsg := ""
	for _, customer := range customers {
		to := customer.Phone
		from := s.cfg.Twilio.PhoneNumber
		if len(to) > 0 && to[0] == '+' {
			to = "whatsapp:" + to
			from = "whatsapp:" + s.cfg.Twilio.WhatsAppNumber
		}

		params := &twilioApi.CreateMessageParams{}
		params.SetTo(to)
		params.SetFrom(from)
		params.SetBody(body)

		if _, err := s.client.Api.CreateMessage(params); err != nil {
			log.Error().Err(err).Str("phone", customer.Phone).Msg("Failed to send message")
			errorMsg = err.Error()
			continue
		}
		sent++
	}

	result := &BlastResult{Recipients: sent, Skipped: skipped, Status: blastStatus(sent, len(customers))}
	s.logCampaign(branchID, subject, "sms", result, errorMsg)
	return result, nil
}

// recipients pages through the branch's active customers with the 1000-row
// cursor and keeps those who are contactable and have promotions enabled.
func (s *CampaignService) recipients(branchID uuid.UUID, contactable func(models.Customer) bool) ([]models.Customer, int, error) {
	cursor := utils.NewCursor(func(limit, offset int) ([]models.Customer, error) {
		var page []models.Customer
		err := s.db.Where("branch_id = ? AND is_active = true", branchID).
			Order("created_at asc").Limit(limit).Offset(offset).Find(&page).Error
		return page, err
	})

	all, err := cursor.All()
	if err != nil {
		return nil, 0, err
	}

	kept := []models.Customer{}
	skipped := 0
	for _, customer := range all {
		if !contactable(customer) || !ShouldNotify(customer, "promotions") {
			skipped++
			continue
		}
		kept = append(kept, customer)
	}
	return kept, skipped, nil
}

func blastStatus(sent, total int) string {
	switch {
	case total == 0 || sent == total:
		return "sent"
	case sent == 0:
		return "failed"
	default:
		return "partial"
	}
}

func (s *CampaignService) logCampaign(branchID uuid.UUID, subject, channel string, result *BlastResult, errorMsg string) {
	entry := models.CampaignLog{
		BranchID:     branchID,
		Subject:      subject,
		Channel:      channel,
		Recipients:   result.Recipients,
		Skipped:      result.Skipped,
		Status:       result.Status,
		ErrorMessage: errorMsg,
		SentAt:       time.Now(),
	}
	if err := s.db.Create(&entry).Error; err != nil {
		log.Error().Err(err).Msg("Failed to log campaign")
	}
}
