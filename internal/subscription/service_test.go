package subscription

import (
	"testing"
	"time"
)

func testPlans() []Plan {
	return []Plan{
		{ID: 1, Code: "free", Name: "Free", Price: 0, Interval: "month"},
		{ID: 2, Code: "pro", Name: "Pro", Price: 49000, Interval: "month"},
	}
}

func TestStatusDefaultsToFreePlan(t *testing.T) {
	svc := NewService(NewInMemoryRepository(testPlans()))

	st, err := svc.Status(7)
	if err != nil {
		t.Fatalf("status failed: %v", err)
	}
	if st.Plan.Code != FreePlanCode {
		t.Fatalf("merchants without a subscription row are on free, got %q", st.Plan.Code)
	}
	if st.ExpiresAt != nil {
		t.Fatalf("free plan never expires")
	}
}

func TestStatusReturnsActivePlan(t *testing.T) {
	repo := NewInMemoryRepository(testPlans())
	expires := time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)
	repo.SetStatus(7, Status{Plan: testPlans()[1], ExpiresAt: &expires})
	svc := NewService(repo)

	st, err := svc.Status(7)
	if err != nil {
		t.Fatalf("status failed: %v", err)
	}
	if st.Plan.Code != "pro" {
		t.Fatalf("expected pro plan, got %q", st.Plan.Code)
	}
	if st.ExpiresAt == nil || !st.ExpiresAt.Equal(expires) {
		t.Fatalf("unexpected expiry: %v", st.ExpiresAt)
	}
}

func TestPaymentsAreScopedPerMerchant(t *testing.T) {
	repo := NewInMemoryRepository(testPlans())
	repo.AddPayment(7, Payment{ID: 1, PlanCode: "pro", Amount: 49000})
	svc := NewService(repo)

	payments, err := svc.Payments(7)
	if err != nil {
		t.Fatalf("payments failed: %v", err)
	}
	if len(payments) != 1 || payments[0].Amount != 49000 {
		t.Fatalf("unexpected payments: %v", payments)
	}

	other, err := svc.Payments(8)
	if err != nil {
		t.Fatalf("payments failed: %v", err)
	}
	if len(other) != 0 {
		t.Fatalf("merchant 8 must not see merchant 7's payments")
	}
}
