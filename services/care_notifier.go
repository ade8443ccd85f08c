package services

// CareNotifier fans a reminder notification out to the realtime hub and to
// web push. Either channel may be nil.
type CareNotifier struct {
	hub  *RealtimeHub
	push *PushService
}

func NewCareNotifier(hub *RealtimeHub, push *PushService) *CareNotifier {
	return &CareNotifier{hub: hub, push: push}
}

func (n *CareNotifier) NotifyUser(userID, title, body string) {
	if n.hub != nil {
		n.hub.Broadcast(userID, map[string]any{
			"kind":  "reminder.scheduled",
			"title": title,
			"body":  body,
		})
	}
	if n.push != nil {
		n.push.NotifyUser(userID, title, body)
	}
}
