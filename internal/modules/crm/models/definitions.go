package models

func f64(v float64) *float64 { return &v }

// definitions lists the canonical shape of every entity kind. The field
// descriptors are authored here by hand so /schema works without any
// runtime reflection.
func definitions() []Definition {
	return []Definition{
		{
			Kind: KindTenant,
			New:  func() interface{} { return NewTenant() },
			Fields: []Field{
				{Name: "name", Type: "string", Required: true},
				{Name: "domain", Type: "string"},
				{Name: "plan", Type: "string", Enum: []string{PlanFree, PlanBusiness, PlanEnterprise}, Default: PlanFree},
				{Name: "country", Type: "string", Default: "KE"},
				{Name: "settings", Type: "object"},
			},
		},
		{
			Kind: KindBillingRecord,
			New:  func() interface{} { return NewBillingRecord() },
			Fields: []Field{
				{Name: "tenant_id", Type: "string", Required: true},
				{Name: "plan", Type: "string", Required: true, Enum: []string{PlanFree, PlanBusiness, PlanEnterprise}},
				{Name: "monthly_fee_kes", Type: "integer", Required: true, Min: f64(0)},
				{Name: "setup_fee_kes", Type: "integer", Min: f64(0), Default: 0},
				{Name: "usage", Type: "object"},
				{Name: "status", Type: "string", Enum: []string{BillingStatusTrial, BillingStatusActive, BillingStatusPastDue, BillingStatusCanceled}, Default: BillingStatusActive},
			},
		},
		{
			Kind: KindModuleSubscription,
			New:  func() interface{} { return NewModuleSubscription() },
			Fields: []Field{
				{Name: "tenant_id", Type: "string", Required: true},
				{Name: "module_key", Type: "string", Required: true, Enum: []string{
					"sender_id_sms", "shortcodes", "ussd", "sms_surveys", "rewards_airtime",
					"mpesa_integration", "bulk_emails", "notifications", "loyalty_points",
				}},
				{Name: "status", Type: "string", Enum: []string{"active", "inactive", "pending"}, Default: "active"},
				{Name: "config", Type: "object"},
			},
		},
		{
			Kind: KindUserAccount,
			New:  func() interface{} { return NewUserAccount() },
			Fields: []Field{
				{Name: "tenant_id", Type: "string", Required: true},
				{Name: "name", Type: "string", Required: true},
				{Name: "email", Type: "string", Required: true},
				{Name: "role", Type: "string", Enum: []string{"owner", "admin", "sales", "viewer"}, Default: "owner"},
				{Name: "seats", Type: "integer"},
				{Name: "is_active", Type: "boolean", Default: true},
			},
		},
		{
			Kind: KindLead,
			New:  func() interface{} { return NewLead() },
			Fields: []Field{
				{Name: "tenant_id", Type: "string", Required: true},
				{Name: "source", Type: "string", Required: true, Enum: []string{"whatsapp", "gmail", "web", "social", "manual"}},
				{Name: "name", Type: "string"},
				{Name: "phone", Type: "string"},
				{Name: "email", Type: "string"},
				{Name: "company", Type: "string"},
				{Name: "score", Type: "number", Min: f64(0), Max: f64(100)},
				{Name: "status", Type: "string", Enum: []string{LeadStatusNew, LeadStatusQualified, LeadStatusProposal, LeadStatusWon, LeadStatusLost}, Default: LeadStatusNew},
				{Name: "meta", Type: "object"},
			},
		},
		{
			Kind: KindMessage,
			New:  func() interface{} { return NewMessage() },
			Fields: []Field{
				{Name: "tenant_id", Type: "string", Required: true},
				{Name: "lead_id", Type: "string", Required: true},
				{Name: "channel", Type: "string", Required: true, Enum: []string{"whatsapp", "gmail", "sms", "email"}},
				{Name: "direction", Type: "string", Required: true, Enum: []string{"inbound", "outbound"}},
				{Name: "content", Type: "string", Required: true},
				{Name: "meta", Type: "object"},
			},
		},
		{
			Kind: KindCatalogItem,
			New:  func() interface{} { return NewCatalogItem() },
			Fields: []Field{
				{Name: "tenant_id", Type: "string", Required: true},
				{Name: "sku", Type: "string"},
				{Name: "title", Type: "string", Required: true},
				{Name: "description", Type: "string"},
				{Name: "unit_price_kes", Type: "number", Required: true, Min: f64(0)},
				{Name: "currency", Type: "string", Enum: []string{"KES", "USD"}, Default: "KES"},
				{Name: "tags", Type: "array"},
			},
		},
		{
			Kind: KindProposal,
			New:  func() interface{} { return NewProposal() },
			Fields: []Field{
				{Name: "tenant_id", Type: "string", Required: true},
				{Name: "lead_id", Type: "string", Required: true},
				{Name: "items", Type: "array", Required: true},
				{Name: "subtotal_kes", Type: "number", Default: 0},
				{Name: "tax_kes", Type: "number", Default: 0},
				{Name: "total_kes", Type: "number", Default: 0},
				{Name: "status", Type: "string", Enum: []string{ProposalStatusDraft, ProposalStatusApproved, ProposalStatusSent, ProposalStatusAccepted, ProposalStatusRejected}, Default: ProposalStatusDraft},
				{Name: "ai_status", Type: "string", Enum: []string{AIStatusNone, AIStatusPending, AIStatusCompleted, AIStatusFailed}, Default: AIStatusPending},
				{Name: "delivery_channels", Type: "array", Enum: []string{ChannelWhatsApp, ChannelGmail, ChannelPDF}},
			},
		},
		{
			Kind: KindPayment,
			New:  func() interface{} { return NewPayment() },
			Fields: []Field{
				{Name: "tenant_id", Type: "string", Required: true},
				{Name: "provider", Type: "string", Required: true, Enum: []string{"mpesa", "paystack"}},
				{Name: "amount_kes", Type: "number", Required: true, Min: f64(0)},
				{Name: "currency", Type: "string", Enum: []string{"KES", "USD"}, Default: "KES"},
				{Name: "status", Type: "string", Enum: []string{"initiated", "succeeded", "failed"}, Default: "initiated"},
				{Name: "reference", Type: "string"},
				{Name: "meta", Type: "object"},
			},
		},
		{
			Kind: KindAIJob,
			New:  func() interface{} { return NewAIJob() },
			Fields: []Field{
				{Name: "tenant_id", Type: "string", Required: true},
				{Name: "job_type", Type: "string", Required: true, Enum: []string{AIJobLeadAnalysis, AIJobCatalogGeneration, AIJobProposalGeneration, AIJobEmbedding}},
				{Name: "status", Type: "string", Enum: []string{AIJobStatusQueued, AIJobStatusRunning, AIJobStatusCompleted, AIJobStatusFailed}, Default: AIJobStatusQueued},
				{Name: "input", Type: "object"},
				{Name: "output", Type: "object"},
			},
		},
		{
			Kind: KindEventLog,
			New:  func() interface{} { return NewEventLog() },
			Fields: []Field{
				{Name: "tenant_id", Type: "string", Required: true},
				{Name: "type", Type: "string", Required: true},
				{Name: "actor", Type: "string"},
				{Name: "data", Type: "object"},
				{Name: "audit", Type: "object"},
			},
		},
	}
}
