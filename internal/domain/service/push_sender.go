package service

import "context"

// PushSender delivers a push notification to a single device token.
// Order events concern exactly one customer, so no multicast surface is needed.
type PushSender interface {
	SendNotification(ctx context.Context, token, title, body string, data map[string]string) error
}
