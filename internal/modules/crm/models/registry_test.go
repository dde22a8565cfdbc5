package models

import (
	"testing"
)

func TestValidateLeadDefaults(t *testing.T) {
	r := NewRegistry()

	rec, verr := r.Validate(KindLead, []byte(`{"tenant_id":"t1","source":"web"}`))
	if verr != nil {
		t.Fatalf("expected valid lead, got %v", verr)
	}

	lead, ok := rec.(*Lead)
	if !ok {
		t.Fatalf("expected *Lead, got %T", rec)
	}
	if lead.Status != LeadStatusNew {
		t.Fatalf("expected default status %q, got %q", LeadStatusNew, lead.Status)
	}
	if lead.TenantID != "t1" {
		t.Fatalf("expected tenant_id t1, got %q", lead.TenantID)
	}
}

func TestValidateEnumAndBounds(t *testing.T) {
	r := NewRegistry()

	cases := []struct {
		name  string
		kind  string
		raw   string
		field string
	}{
		{"lead bad source", KindLead, `{"tenant_id":"t1","source":"telegram"}`, "source"},
		{"lead score too high", KindLead, `{"tenant_id":"t1","source":"web","score":150}`, "score"},
		{"lead score negative", KindLead, `{"tenant_id":"t1","source":"web","score":-1}`, "score"},
		{"lead missing tenant", KindLead, `{"source":"web"}`, "tenant_id"},
		{"user bad email", KindUserAccount, `{"tenant_id":"t1","name":"A","email":"not-an-email"}`, "email"},
		{"user bad role", KindUserAccount, `{"tenant_id":"t1","name":"A","email":"a@b.co","role":"root"}`, "role"},
		{"billing missing fee", KindBillingRecord, `{"tenant_id":"t1","plan":"free"}`, "monthly_fee_kes"},
		{"billing negative setup fee", KindBillingRecord, `{"tenant_id":"t1","plan":"free","monthly_fee_kes":0,"setup_fee_kes":-1}`, "setup_fee_kes"},
		{"subscription bad module", KindModuleSubscription, `{"tenant_id":"t1","module_key":"carrier_pigeon"}`, "module_key"},
		{"catalog negative price", KindCatalogItem, `{"tenant_id":"t1","title":"Bag","unit_price_kes":-5}`, "unit_price_kes"},
		{"payment bad provider", KindPayment, `{"tenant_id":"t1","provider":"stripe","amount_kes":10}`, "provider"},
		{"message missing content", KindMessage, `{"tenant_id":"t1","lead_id":"l1","channel":"sms","direction":"inbound"}`, "content"},
		{"aijob bad type", KindAIJob, `{"tenant_id":"t1","job_type":"mining"}`, "job_type"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, verr := r.Validate(tc.kind, []byte(tc.raw))
			if verr == nil {
				t.Fatalf("expected validation error for %s", tc.name)
			}
			found := false
			for _, fe := range verr.Errors {
				if fe.Field == tc.field {
					found = true
				}
			}
			if !found {
				t.Fatalf("expected error on field %q, got %v", tc.field, verr.Errors)
			}
		})
	}
}

func TestValidateAcceptsBoundaryValues(t *testing.T) {
	r := NewRegistry()

	valid := []struct {
		kind string
		raw  string
	}{
		{KindLead, `{"tenant_id":"t1","source":"web","score":0}`},
		{KindLead, `{"tenant_id":"t1","source":"web","score":100}`},
		{KindBillingRecord, `{"tenant_id":"t1","plan":"business","monthly_fee_kes":0}`},
		{KindCatalogItem, `{"tenant_id":"t1","title":"Airtime","unit_price_kes":0}`},
		{KindPayment, `{"tenant_id":"t1","provider":"mpesa","amount_kes":0}`},
	}

	for _, tc := range valid {
		if _, verr := r.Validate(tc.kind, []byte(tc.raw)); verr != nil {
			t.Fatalf("expected %s payload %s to validate, got %v", tc.kind, tc.raw, verr)
		}
	}
}

func TestValidateTenantDefaults(t *testing.T) {
	r := NewRegistry()

	rec, verr := r.Validate(KindTenant, []byte(`{"name":"Savanna Ltd"}`))
	if verr != nil {
		t.Fatalf("expected valid tenant, got %v", verr)
	}

	tenant := rec.(*Tenant)
	if tenant.Plan != PlanFree {
		t.Fatalf("expected default plan free, got %q", tenant.Plan)
	}
	if tenant.Country != "KE" {
		t.Fatalf("expected default country KE, got %q", tenant.Country)
	}
}

func TestValidateUserAccountDefaults(t *testing.T) {
	r := NewRegistry()

	rec, verr := r.Validate(KindUserAccount, []byte(`{"tenant_id":"t1","name":"Amina","email":"amina@duka.ke"}`))
	if verr != nil {
		t.Fatalf("expected valid user, got %v", verr)
	}

	user := rec.(*UserAccount)
	if user.Role != "owner" {
		t.Fatalf("expected default role owner, got %q", user.Role)
	}
	if !user.IsActive {
		t.Fatal("expected is_active to default true")
	}
}

func TestValidateUnknownKind(t *testing.T) {
	r := NewRegistry()

	_, verr := r.Validate("unicorn", []byte(`{}`))
	if verr == nil {
		t.Fatal("expected error for unknown kind")
	}
	if verr.Errors[0].Message != "unknown entity kind" {
		t.Fatalf("unexpected message: %q", verr.Errors[0].Message)
	}
}

func TestValidateMalformedBody(t *testing.T) {
	r := NewRegistry()

	_, verr := r.Validate(KindLead, []byte(`{not json`))
	if verr == nil {
		t.Fatal("expected error for malformed body")
	}
	if verr.Errors[0].Message != "body must be a JSON object" {
		t.Fatalf("unexpected message: %q", verr.Errors[0].Message)
	}
}

func TestKinds(t *testing.T) {
	r := NewRegistry()

	kinds := r.Kinds()
	if len(kinds) != 11 {
		t.Fatalf("expected 11 kinds, got %d: %v", len(kinds), kinds)
	}
	for i := 1; i < len(kinds); i++ {
		if kinds[i-1] >= kinds[i] {
			t.Fatalf("expected sorted kinds, got %v", kinds)
		}
	}
	if !r.Has(KindProposal) {
		t.Fatal("expected proposal kind to be registered")
	}
}

func TestDescribeAllKinds(t *testing.T) {
	r := NewRegistry()

	out := r.Describe()
	if len(out) != 11 {
		t.Fatalf("expected 11 descriptors, got %d", len(out))
	}

	lead, ok := out[KindLead].(map[string]interface{})
	if !ok {
		t.Fatalf("expected lead descriptor map, got %T", out[KindLead])
	}
	props, ok := lead["properties"].(map[string]interface{})
	if !ok {
		t.Fatal("expected lead properties map")
	}
	source, ok := props["source"].(map[string]interface{})
	if !ok {
		t.Fatal("expected source property")
	}
	if _, ok := source["enum"]; !ok {
		t.Fatal("expected enum on source property")
	}
}

func TestDescribeIsolatesBrokenDefinition(t *testing.T) {
	good := Definition{
		Kind: "good",
		New:  func() interface{} { return &Tenant{} },
		Fields: []Field{
			{Name: "name", Type: "string", Required: true},
		},
	}
	broken := Definition{
		Kind: "broken",
		New:  func() interface{} { return &Tenant{} },
		Fields: []Field{
			{Name: "", Type: ""},
		},
	}

	r := newRegistry(good, broken)
	out := r.Describe()

	if len(out) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(out))
	}

	b, ok := out["broken"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected broken entry map, got %T", out["broken"])
	}
	if b["error"] != "schema generation failed" {
		t.Fatalf("expected error marker, got %v", b)
	}

	g, ok := out["good"].(map[string]interface{})
	if !ok {
		t.Fatal("expected good entry map")
	}
	if _, ok := g["properties"]; !ok {
		t.Fatal("expected good descriptor to survive broken sibling")
	}
}
