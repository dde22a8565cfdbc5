package models

// Collection kinds. Each entity kind maps to one backing collection named
// by the lowercased entity name.
const (
	KindTenant             = "tenant"
	KindBillingRecord      = "billingrecord"
	KindModuleSubscription = "modulesubscription"
	KindUserAccount        = "useraccount"
	KindLead               = "lead"
	KindMessage            = "message"
	KindCatalogItem        = "catalogitem"
	KindProposal           = "proposal"
	KindPayment            = "payment"
	KindAIJob              = "aijob"
	KindEventLog           = "eventlog"
)

// Pricing tiers
const (
	PlanFree       = "free"
	PlanBusiness   = "business"
	PlanEnterprise = "enterprise"
)

// Billing status
const (
	BillingStatusTrial    = "trial"
	BillingStatusActive   = "active"
	BillingStatusPastDue  = "past_due"
	BillingStatusCanceled = "canceled"
)

// Lead status
const (
	LeadStatusNew       = "new"
	LeadStatusQualified = "qualified"
	LeadStatusProposal  = "proposal"
	LeadStatusWon       = "won"
	LeadStatusLost      = "lost"
)

// Proposal status
const (
	ProposalStatusDraft    = "draft"
	ProposalStatusApproved = "approved"
	ProposalStatusSent     = "sent"
	ProposalStatusAccepted = "accepted"
	ProposalStatusRejected = "rejected"
)

// Proposal AI status
const (
	AIStatusNone      = "none"
	AIStatusPending   = "pending"
	AIStatusCompleted = "completed"
	AIStatusFailed    = "failed"
)

// Delivery channels
const (
	ChannelWhatsApp = "whatsapp"
	ChannelGmail    = "gmail"
	ChannelPDF      = "pdf"
)

// AI job types
const (
	AIJobLeadAnalysis       = "lead_analysis"
	AIJobCatalogGeneration  = "catalog_generation"
	AIJobProposalGeneration = "proposal_generation"
	AIJobEmbedding          = "embedding"
)

// AI job status
const (
	AIJobStatusQueued    = "queued"
	AIJobStatusRunning   = "running"
	AIJobStatusCompleted = "completed"
	AIJobStatusFailed    = "failed"
)

// Tenant is a logical customer organization. Every other entity is
// partitioned by its id.
type Tenant struct {
	Name     string                 `json:"name" validate:"required"`
	Domain   *string                `json:"domain,omitempty"`
	Plan     string                 `json:"plan" validate:"oneof=free business enterprise"`
	Country  string                 `json:"country" validate:"required"`
	Settings map[string]interface{} `json:"settings"`
}

type BillingRecord struct {
	TenantID      string                 `json:"tenant_id" validate:"required"`
	Plan          string                 `json:"plan" validate:"required,oneof=free business enterprise"`
	MonthlyFeeKES *int                   `json:"monthly_fee_kes" validate:"required,gte=0"`
	SetupFeeKES   int                    `json:"setup_fee_kes" validate:"gte=0"`
	Usage         map[string]interface{} `json:"usage"`
	Status        string                 `json:"status" validate:"oneof=trial active past_due canceled"`
}

type ModuleSubscription struct {
	TenantID  string                 `json:"tenant_id" validate:"required"`
	ModuleKey string                 `json:"module_key" validate:"required,oneof=sender_id_sms shortcodes ussd sms_surveys rewards_airtime mpesa_integration bulk_emails notifications loyalty_points"`
	Status    string                 `json:"status" validate:"oneof=active inactive pending"`
	Config    map[string]interface{} `json:"config"`
}

type UserAccount struct {
	TenantID string `json:"tenant_id" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Role     string `json:"role" validate:"oneof=owner admin sales viewer"`
	Seats    *int   `json:"seats,omitempty"`
	IsActive bool   `json:"is_active"`
}

type Lead struct {
	TenantID string                 `json:"tenant_id" validate:"required"`
	Source   string                 `json:"source" validate:"required,oneof=whatsapp gmail web social manual"`
	Name     *string                `json:"name,omitempty"`
	Phone    *string                `json:"phone,omitempty"`
	Email    *string                `json:"email,omitempty" validate:"omitempty,email"`
	Company  *string                `json:"company,omitempty"`
	Score    *float64               `json:"score,omitempty" validate:"omitempty,gte=0,lte=100"`
	Status   string                 `json:"status" validate:"oneof=new qualified proposal won lost"`
	Meta     map[string]interface{} `json:"meta"`
}

type Message struct {
	TenantID  string                 `json:"tenant_id" validate:"required"`
	LeadID    string                 `json:"lead_id" validate:"required"`
	Channel   string                 `json:"channel" validate:"required,oneof=whatsapp gmail sms email"`
	Direction string                 `json:"direction" validate:"required,oneof=inbound outbound"`
	Content   string                 `json:"content" validate:"required"`
	Meta      map[string]interface{} `json:"meta"`
}

type CatalogItem struct {
	TenantID     string   `json:"tenant_id" validate:"required"`
	SKU          *string  `json:"sku,omitempty"`
	Title        string   `json:"title" validate:"required"`
	Description  *string  `json:"description,omitempty"`
	UnitPriceKES *float64 `json:"unit_price_kes" validate:"required,gte=0"`
	Currency     string   `json:"currency" validate:"oneof=KES USD"`
	Tags         []string `json:"tags"`
}

// ProposalItem is embedded in a Proposal and has no identity of its own.
// Quantity and unit price are pointers so a missing value can default
// (1 and 0 respectively) while an explicit zero is honored.
type ProposalItem struct {
	CatalogItemID *string  `json:"catalog_item_id,omitempty"`
	Title         string   `json:"title" validate:"required"`
	Description   *string  `json:"description,omitempty"`
	Quantity      *float64 `json:"quantity,omitempty"`
	UnitPriceKES  *float64 `json:"unit_price_kes,omitempty"`
}

// Proposal totals are always computed server-side; values supplied by a
// caller are never stored.
type Proposal struct {
	TenantID         string         `json:"tenant_id" validate:"required"`
	LeadID           string         `json:"lead_id" validate:"required"`
	Items            []ProposalItem `json:"items" validate:"dive"`
	SubtotalKES      float64        `json:"subtotal_kes"`
	TaxKES           float64        `json:"tax_kes"`
	TotalKES         float64        `json:"total_kes"`
	Status           string         `json:"status" validate:"oneof=draft approved sent accepted rejected"`
	AIStatus         string         `json:"ai_status" validate:"oneof=none pending completed failed"`
	DeliveryChannels []string       `json:"delivery_channels" validate:"dive,oneof=whatsapp gmail pdf"`
}

type Payment struct {
	TenantID  string                 `json:"tenant_id" validate:"required"`
	Provider  string                 `json:"provider" validate:"required,oneof=mpesa paystack"`
	AmountKES *float64               `json:"amount_kes" validate:"required,gte=0"`
	Currency  string                 `json:"currency" validate:"oneof=KES USD"`
	Status    string                 `json:"status" validate:"oneof=initiated succeeded failed"`
	Reference *string                `json:"reference,omitempty"`
	Meta      map[string]interface{} `json:"meta"`
}

type AIJob struct {
	TenantID string                 `json:"tenant_id" validate:"required"`
	JobType  string                 `json:"job_type" validate:"required,oneof=lead_analysis catalog_generation proposal_generation embedding"`
	Status   string                 `json:"status" validate:"oneof=queued running completed failed"`
	Input    map[string]interface{} `json:"input"`
	Output   map[string]interface{} `json:"output"`
}

// EventLog records are append-only and immutable once written.
type EventLog struct {
	TenantID string                 `json:"tenant_id" validate:"required"`
	Type     string                 `json:"type" validate:"required"`
	Actor    *string                `json:"actor,omitempty"`
	Data     map[string]interface{} `json:"data"`
	Audit    map[string]interface{} `json:"audit"`
}

// NewTenant returns a Tenant with its declared defaults applied. Decoding
// caller JSON over the result only overrides fields that were supplied.
func NewTenant() *Tenant {
	return &Tenant{Plan: PlanFree, Country: "KE", Settings: map[string]interface{}{}}
}

func NewBillingRecord() *BillingRecord {
	return &BillingRecord{Status: BillingStatusActive, Usage: map[string]interface{}{}}
}

func NewModuleSubscription() *ModuleSubscription {
	return &ModuleSubscription{Status: "active", Config: map[string]interface{}{}}
}

func NewUserAccount() *UserAccount {
	return &UserAccount{Role: "owner", IsActive: true}
}

func NewLead() *Lead {
	return &Lead{Status: LeadStatusNew, Meta: map[string]interface{}{}}
}

func NewMessage() *Message {
	return &Message{Meta: map[string]interface{}{}}
}

func NewCatalogItem() *CatalogItem {
	return &CatalogItem{Currency: "KES", Tags: []string{}}
}

func NewProposal() *Proposal {
	return &Proposal{
		Status:           ProposalStatusDraft,
		AIStatus:         AIStatusPending,
		Items:            []ProposalItem{},
		DeliveryChannels: []string{},
	}
}

func NewPayment() *Payment {
	return &Payment{Currency: "KES", Status: "initiated", Meta: map[string]interface{}{}}
}

func NewAIJob() *AIJob {
	return &AIJob{
		Status: AIJobStatusQueued,
		Input:  map[string]interface{}{},
		Output: map[string]interface{}{},
	}
}

func NewEventLog() *EventLog {
	return &EventLog{
		Data:  map[string]interface{}{},
		Audit: map[string]interface{}{},
	}
}
