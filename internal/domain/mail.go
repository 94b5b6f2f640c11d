package domain

type MailMessage struct {
	Type string `json:"type"`
	To   string `json:"to"`
	Data any    `json:"data"`
}

type CreateUserMailData struct {
	FullName string `json:"fullName"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type ResetPasswordMailData struct {
	FullName   string `json:"fullName"`
	OTP        string `json:"otp"`
	Expiration int    `json:"expiration"`
}

// ClearanceNoticeMailData carries the clearance notice sent to the control
// center mailbox when a vessel's arrival is recorded.
type ClearanceNoticeMailData struct {
	VesselName  string `json:"vesselName"`
	Flag        string `json:"flag"`
	ComingFrom  string `json:"comingFrom"`
	HeadingTo   string `json:"headingTo"`
	CrewCount   int32  `json:"crewCount"`
	ArrivalDate string `json:"arrivalDate"`
	EnteredBy   string `json:"enteredBy"`
}
