package schema

type Webhook struct {
	ID                ID                  `json:"id"`
	Name              *string             `json:"name"`
	TargetURL         string              `json:"targetUrl"`
	IsActive          bool                `json:"isActive"`
	SecretKey         *string             `json:"secretKey"`
	SubscriptionQuery *string             `json:"subscriptionQuery"`
	CustomHeaders     *JSONString         `json:"customHeaders"`
	AsyncEvents       []WebhookEventAsync `json:"asyncEvents"`
	SyncEvents        []WebhookEventSync  `json:"syncEvents"`
	App               *App                `json:"app"`
}

func (w Webhook) NodeID() ID { return w.ID }

type WebhookEventAsync struct {
	Name      string                    `json:"name"`
	EventType WebhookEventTypeAsyncEnum `json:"eventType"`
}

type WebhookEventSync struct {
	Name      string                   `json:"name"`
	EventType WebhookEventTypeSyncEnum `json:"eventType"`
}

type WebhookError struct {
	Field   *string          `json:"field"`
	Message *string          `json:"message"`
	Code    WebhookErrorCode `json:"code"`
}
