package chat

import "context"

// SupportResponder answers customer-service chat frames. The completion
// backend is owned by the AI gateway; this default implementation hands
// every question to the configured fallback line so the websocket path
// works without that gateway being up.
type SupportResponder struct {
	Fallback string
}

func NewSupportResponder() *SupportResponder {
	return &SupportResponder{
		Fallback: "您好，客服人員將盡快回覆您的問題。",
	}
}

func (r *SupportResponder) Reply(ctx context.Context, memberID int, message string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return r.Fallback, nil
}
