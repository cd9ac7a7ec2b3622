package http

import "time"

// Error is the uniform error body returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// RequestOTPRequest asks for a fresh code for a shipment.
type RequestOTPRequest struct {
	ShipmentID string `json:"shipment_id"`
}

// RequestOTPResponse reports when the freshly issued code lapses.
// The code itself never appears in the response; it travels to the customer
// out of band.
type RequestOTPResponse struct {
	Message   string    `json:"message"`
	OTPExpiry time.Time `json:"otp_expiry"`
}

// ConfirmDeliveryRequest closes out a shipment with the code collected from
// the customer.
type ConfirmDeliveryRequest struct {
	ShipmentID string `json:"shipment_id"`
	OTPCode    string `json:"otp_code"`
	AgentID    string `json:"agent_id"`
}

// ConfirmDeliveryResponse reports a successful confirmation.
type ConfirmDeliveryResponse struct {
	Message    string    `json:"message"`
	ShipmentID string    `json:"shipment_id"`
	Status     string    `json:"status"`
	Timestamp  time.Time `json:"timestamp"`
}

// HistoryEntry is one completed delivery in an agent's history.
type HistoryEntry struct {
	ShipmentID  string    `json:"shipment_id"`
	DeliveredAt time.Time `json:"delivered_at"`
	Status      string    `json:"status"`
}

// RegisterAgentRequest enrolls a delivery agent. Email and mobile are each
// optional, but at least one must be present.
type RegisterAgentRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`
	Mobile   string `json:"mobile,omitempty"`
	Password string `json:"password"`
}

// AgentInfo identifies an agent in registration and login responses.
type AgentInfo struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email,omitempty"`
	Mobile string `json:"mobile,omitempty"`
}

// RegisterAgentResponse confirms enrollment.
type RegisterAgentResponse struct {
	Message string    `json:"message"`
	Agent   AgentInfo `json:"agent"`
}

// LoginRequest checks an agent's credentials. The identifier may be the
// registered email or mobile.
type LoginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

// LoginResponse confirms a successful credential check.
type LoginResponse struct {
	Message string    `json:"message"`
	Agent   AgentInfo `json:"agent"`
}
