package dto

// CreateNotificationRequest is the payload for storing a notification
type CreateNotificationRequest struct {
	Title   string `json:"title" validate:"required,max=255"`
	Message string `json:"message" validate:"required"`
	Type    string `json:"notification_type" validate:"required,notification_type"`
}

// ListNotificationsQuery holds the supported list filters
type ListNotificationsQuery struct {
	UnreadOnly bool `query:"unread_only"`
	Offset     int  `query:"skip" validate:"omitempty,gte=0"`
	Limit      int  `query:"limit" validate:"omitempty,gte=1,lte=100"`
}

// ListNotificationsResponse wraps a notification page with its total count
type ListNotificationsResponse struct {
	Notifications interface{} `json:"notifications"`
	Total         int64       `json:"total"`
	Offset        int         `json:"skip"`
	Limit         int         `json:"limit"`
}

// UpdateNotificationSettingsRequest replaces the full preference set; every
// flag is submitted explicitly
type UpdateNotificationSettingsRequest struct {
	EmailNotifications bool `json:"email_notifications"`
	SMSNotifications   bool `json:"sms_notifications"`
	BudgetAlerts       bool `json:"budget_alerts"`
	PaymentReminders   bool `json:"payment_reminders"`
	WeeklyReports      bool `json:"weekly_reports"`
	MonthlyReports     bool `json:"monthly_reports"`
}
