package services

import (
	"encoding/json"
	"log"
	"os"
	"time"

	"github.com/dig-it-all-from-digital/Plauntie/models"

	webpush "github.com/SherClockHolmes/webpush-go"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PushService struct {
	db              *gorm.DB
	vapidPublicKey  string
	vapidPrivateKey string
	subscriber      string
}

func NewPushService(db *gorm.DB) *PushService {
	subscriber := os.Getenv("VAPID_SUBSCRIBER")
	if subscriber == "" {
		subscriber = "hello@plauntie.app"
	}
	return &PushService{
		db:              db,
		vapidPublicKey:  os.Getenv("VAPID_PUBLIC_KEY"),
		vapidPrivateKey: os.Getenv("VAPID_PRIVATE_KEY"),
		subscriber:      subscriber,
	}
}

// VAPIDPublicKey returns the key the client needs to subscribe.
func (p *PushService) VAPIDPublicKey() string {
	return p.vapidPublicKey
}

// Subscribe upserts a subscription keyed by endpoint, so re-subscribing from
// the same browser replaces the old keys instead of stacking rows.
func (p *PushService) Subscribe(userID, endpoint, p256dh, auth string) (*models.PushSubscription, error) {
	sub := &models.PushSubscription{
		ID:        uuid.NewString(),
		UserID:    userID,
		Endpoint:  endpoint,
		P256dh:    p256dh,
		Auth:      auth,
		CreatedAt: time.Now().UTC(),
	}
	err := p.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "endpoint"}},
		DoUpdates: clause.AssignmentColumns([]string{"user_id", "p256dh", "auth"}),
	}).Create(sub).Error
	if err != nil {
		return nil, err
	}
	return sub, nil
}

// NotifyUser sends {title, body} to every subscription the user has.
// Delivery is fire-and-forget: it runs in the background and never reports
// failures to the caller.
func (p *PushService) NotifyUser(userID, title, body string) {
	go p.fanOut(userID, title, body)
}

func (p *PushService) fanOut(userID, title, body string) {
	if p.vapidPublicKey == "" || p.vapidPrivateKey == "" {
		log.Println("[push] VAPID keys not configured, skipping push")
		return
	}

	var subs []models.PushSubscription
	if err := p.db.Where("user_id = ?", userID).Find(&subs).Error; err != nil {
		log.Printf("[push] failed to load subscriptions for user %s: %v", userID, err)
		return
	}
	if len(subs) == 0 {
		return
	}

	payload, _ := json.Marshal(map[string]string{
		"title": title,
		"body":  body,
	})

	for _, sub := range subs {
		resp, err := webpush.SendNotification(payload, &webpush.Subscription{
			Endpoint: sub.Endpoint,
			Keys: webpush.Keys{
				P256dh: sub.P256dh,
				Auth:   sub.Auth,
			},
		}, &webpush.Options{
			Subscriber:      p.subscriber,
			VAPIDPublicKey:  p.vapidPublicKey,
			VAPIDPrivateKey: p.vapidPrivateKey,
			TTL:             60 * 60 * 24,
		})
		if err != nil {
			log.Printf("[push] delivery to %s failed: %v", sub.Endpoint, err)
			continue
		}
		// 404/410 means the subscription expired. The row is kept until the
		// client re-subscribes; we only log it.
		if resp.StatusCode == 404 || resp.StatusCode == 410 {
			log.Printf("[push] subscription expired (status %d): %s", resp.StatusCode, sub.Endpoint)
		}
		resp.Body.Close()
	}
}
