package commission

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smilepoint-dental/clinic-backend-go/internal/domain/commission"
	"github.com/smilepoint-dental/clinic-backend-go/internal/pkg/validator"
	"github.com/smilepoint-dental/clinic-backend-go/internal/repository/memory"
)

func strPtr(s string) *string { return &s }

func billedService() commission.BilledServiceRequest {
	return commission.BilledServiceRequest{
		DentistID:       "3",
		DentistName:     "Dr. Ana Lim",
		StaffID:         strPtr("emp-7"),
		StaffName:       strPtr("Carla Reyes"),
		Service:         "Xray panoramic",
		TreatmentAmount: decimal.NewFromInt(5000),
		PatientName:     "Jose Cruz",
		Date:            "2025-03-10",
	}
}

func TestCommissionService_RecordBilledService_CreatesBothSides(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewCommissionService(memory.NewCommissionStore())

	created, err := svc.RecordBilledService(ctx, billedService())
	require.NoError(t, err)
	require.Len(t, created, 2)

	dentist, staff := created[0], created[1]
	assert.Equal(t, "3", dentist.EmployeeID)
	assert.Equal(t, "dentist", dentist.EmployeeType)
	assert.Equal(t, "40%", dentist.CommissionRate)
	assert.True(t, dentist.CommissionAmount.Equal(decimal.NewFromInt(2000)),
		"dentist commission = %s", dentist.CommissionAmount)

	assert.Equal(t, "emp-7", staff.EmployeeID)
	assert.Equal(t, "staff", staff.EmployeeType)
	assert.Equal(t, "flat 50", staff.CommissionRate)
	assert.True(t, staff.CommissionAmount.Equal(decimal.NewFromInt(50)),
		"staff commission = %s", staff.CommissionAmount)

	// Both records stem from the same payment.
	assert.NotEmpty(t, dentist.TransactionID)
	assert.Equal(t, dentist.TransactionID, staff.TransactionID)
	assert.NotEqual(t, dentist.ID, staff.ID)
}

func TestCommissionService_RecordBilledService_HonorsProvidedTransactionID(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewCommissionService(memory.NewCommissionStore())

	req := billedService()
	req.TransactionID = strPtr("txn-2025-0042")

	created, err := svc.RecordBilledService(ctx, req)
	require.NoError(t, err)
	require.Len(t, created, 2)
	assert.Equal(t, "txn-2025-0042", created[0].TransactionID)
	assert.Equal(t, "txn-2025-0042", created[1].TransactionID)
}

func TestCommissionService_RecordBilledService_SkipsZeroAmountSides(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := memory.NewCommissionStore()
	svc := NewCommissionService(store)

	// The owner earns nothing and the service matches no staff tier, so the
	// billing is accepted but produces no records.
	req := billedService()
	req.DentistID = "1"
	req.DentistName = "Dr. Maria Santos"
	req.Service = "Consultation"
	req.TreatmentAmount = decimal.NewFromInt(1000)

	created, err := svc.RecordBilledService(ctx, req)
	require.NoError(t, err)
	assert.Empty(t, created)

	all, err := store.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestCommissionService_RecordBilledService_DentistOnly(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewCommissionService(memory.NewCommissionStore())

	req := billedService()
	req.StaffID = nil
	req.StaffName = nil
	req.Service = "Root canal"
	req.TreatmentAmount = decimal.NewFromInt(10000)

	created, err := svc.RecordBilledService(ctx, req)
	require.NoError(t, err)
	require.Len(t, created, 1)
	assert.Equal(t, "3", created[0].EmployeeID)
	assert.True(t, created[0].CommissionAmount.Equal(decimal.NewFromInt(4000)),
		"commission = %s", created[0].CommissionAmount)
}

func TestCommissionService_RecordBilledService_ValidatesInput(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewCommissionService(memory.NewCommissionStore())

	req := billedService()
	req.DentistID = ""
	req.StaffName = nil // staff id without a name
	req.TreatmentAmount = decimal.NewFromInt(-5000)
	req.Date = "March 10"

	_, err := svc.RecordBilledService(ctx, req)
	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	details := validationErrs.ToMap()
	assert.Contains(t, details, "dentist_id")
	assert.Contains(t, details, "staff_name")
	assert.Contains(t, details, "treatment_amount")
	assert.Contains(t, details, "date")
}

func TestCommissionService_ListRecords(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewCommissionService(memory.NewCommissionStore())

	for _, date := range []string{"2025-03-05", "2025-03-20", "2025-04-02"} {
		req := billedService()
		req.StaffID = nil
		req.StaffName = nil
		req.Service = "Root canal"
		req.TreatmentAmount = decimal.NewFromInt(10000)
		req.Date = date
		_, err := svc.RecordBilledService(ctx, req)
		require.NoError(t, err)
	}

	records, err := svc.ListRecords(ctx, commission.Filter{
		EmployeeID: "3",
		StartDate:  strPtr("2025-03-01"),
		EndDate:    strPtr("2025-03-31"),
	})
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "2025-03-05", records[0].Date)
	assert.Equal(t, "2025-03-20", records[1].Date)

	records, err = svc.ListRecords(ctx, commission.Filter{EmployeeID: "3"})
	require.NoError(t, err)
	assert.Len(t, records, 3)
}
