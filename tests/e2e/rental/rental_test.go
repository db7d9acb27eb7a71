//go:build e2e

package rental_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	reqdto "fleetrent/internal/handler/dto/request"
	resdto "fleetrent/internal/handler/dto/response"
	"fleetrent/tests/common/authtest"
	"fleetrent/tests/common/dbtest"
	"fleetrent/tests/common/httptest"
	"fleetrent/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	rentalsURL         = "/api/rentals"
	vehicleScheduleURL = "/api/vehicles/%s/schedule"
)

type RentalSuite struct {
	e2e.SharedSuite
}

func (s *RentalSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestRentalSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(RentalSuite))
}

type rentalFixtures struct {
	vehicleID uuid.UUID
	clientID  uuid.UUID
	token     string
	start     time.Time
	end       time.Time
}

func (s *RentalSuite) seedFixtures(t *testing.T) rentalFixtures {
	t.Helper()

	vehicleID := dbtest.CreateTestVehicle(t, s.DB, dbtest.DefaultOwnerID, "Toyota Camry", "01 AA 111", 10000, 500)
	clientID := dbtest.CreateTestClient(t, s.DB, dbtest.DefaultOwnerID, "Test Client", "+37491000000")
	token := authtest.IssueToken(t, s.Config, uuid.New(), dbtest.DefaultOwnerID, "manager")

	start := time.Now().UTC().Add(24 * time.Hour).Truncate(time.Second)
	return rentalFixtures{
		vehicleID: vehicleID,
		clientID:  clientID,
		token:     token,
		start:     start,
		end:       start.Add(48 * time.Hour),
	}
}

func (s *RentalSuite) createRentalDTO(f rentalFixtures) reqdto.CreateRentalRequest {
	return reqdto.CreateRentalRequest{
		VehicleID:     f.vehicleID,
		ClientID:      f.clientID,
		StartAt:       f.start,
		EndAt:         f.end,
		BookingType:   "DAILY",
		PaymentStatus: "PAID",
	}
}

func (s *RentalSuite) TestRentalLifecycle() {
	s.Run("rental is created, extended, and completed", func() {
		t := s.T()
		f := s.seedFixtures(t)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, rentalsURL, s.createRentalDTO(f), f.token)
		var created resdto.CreatedResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
		require.NotEqual(t, uuid.Nil, created.ID)

		rentalURL := rentalsURL + "/" + created.ID.String()

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, rentalURL, nil, f.token)
		var view resdto.RentalResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &view)
		require.Equal(t, int64(20000), view.TotalAmount) // 2 days * 10000
		require.Equal(t, "ACTIVE", view.Status)
		require.Regexp(t, `^R-\d{6}-[0-9A-F]{6}$`, view.ContractNumber)
		require.Empty(t, view.Extensions)

		extendBody := reqdto.ExtendRentalRequest{
			NewEndAt:      f.end.Add(24 * time.Hour),
			PaymentStatus: "PAID",
		}
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, rentalURL+"/extend", extendBody, f.token)
		var extended resdto.ExtendedResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &extended)
		require.Equal(t, int64(10000), extended.AddedAmount)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, rentalURL+"/complete", nil, f.token)
		require.Equal(t, http.StatusNoContent, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, rentalURL, nil, f.token)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &view)
		require.Equal(t, "COMPLETED", view.Status)
		require.Equal(t, int64(30000), view.TotalAmount)
		require.Len(t, view.Extensions, 1)

		// Creation and extension income must be on the ledger
		var ledgerTotal int64
		err := s.DB.QueryRow(context.Background(),
			"SELECT COALESCE(SUM(amount), 0) FROM cash_transactions WHERE owner_id = $1 AND kind = 'INCOME'",
			dbtest.DefaultOwnerID).Scan(&ledgerTotal)
		require.NoError(t, err)
		require.Equal(t, int64(30000), ledgerTotal)
	})

	s.Run("overlapping rental is rejected", func() {
		t := s.T()
		f := s.seedFixtures(t)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, rentalsURL, s.createRentalDTO(f), f.token)
		require.Equal(t, http.StatusCreated, w.Code)

		overlapping := s.createRentalDTO(f)
		overlapping.StartAt = f.start.Add(24 * time.Hour)
		overlapping.EndAt = overlapping.StartAt.Add(48 * time.Hour)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, rentalsURL, overlapping, f.token)
		httptest.AssertErrorContains(t, w, http.StatusConflict, "not available")
	})

	s.Run("back-to-back rental is accepted", func() {
		t := s.T()
		f := s.seedFixtures(t)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, rentalsURL, s.createRentalDTO(f), f.token)
		require.Equal(t, http.StatusCreated, w.Code)

		adjacent := s.createRentalDTO(f)
		adjacent.StartAt = f.end
		adjacent.EndAt = f.end.Add(24 * time.Hour)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, rentalsURL, adjacent, f.token)
		require.Equal(t, http.StatusCreated, w.Code)
	})

	s.Run("another tenant cannot see the rental", func() {
		t := s.T()
		f := s.seedFixtures(t)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, rentalsURL, s.createRentalDTO(f), f.token)
		var created resdto.CreatedResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)

		otherOwner := dbtest.CreateTestOwner(t, s.DB, "Other Fleet")
		otherToken := authtest.IssueToken(t, s.Config, uuid.New(), otherOwner, "manager")

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, rentalsURL+"/"+created.ID.String(), nil, otherToken)
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

func (s *RentalSuite) TestDebtSettlement() {
	s.Run("debt rental records income only at settlement", func() {
		t := s.T()
		f := s.seedFixtures(t)

		body := s.createRentalDTO(f)
		body.PaymentStatus = "DEBT"

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, rentalsURL, body, f.token)
		var created resdto.CreatedResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)

		var ledgerCount int
		err := s.DB.QueryRow(context.Background(),
			"SELECT COUNT(*) FROM cash_transactions WHERE owner_id = $1", dbtest.DefaultOwnerID).Scan(&ledgerCount)
		require.NoError(t, err)
		require.Zero(t, ledgerCount)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, rentalsURL+"/"+created.ID.String()+"/settle-debt", nil, f.token)
		require.Equal(t, http.StatusNoContent, w.Code)

		var ledgerTotal int64
		err = s.DB.QueryRow(context.Background(),
			"SELECT COALESCE(SUM(amount), 0) FROM cash_transactions WHERE owner_id = $1 AND kind = 'INCOME'",
			dbtest.DefaultOwnerID).Scan(&ledgerTotal)
		require.NoError(t, err)
		require.Equal(t, int64(20000), ledgerTotal)

		// Settling twice fails
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, rentalsURL+"/"+created.ID.String()+"/settle-debt", nil, f.token)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func (s *RentalSuite) TestVehicleSchedule() {
	s.Run("schedule classifies upcoming rentals", func() {
		t := s.T()
		f := s.seedFixtures(t)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, rentalsURL, s.createRentalDTO(f), f.token)
		require.Equal(t, http.StatusCreated, w.Code)

		url := fmt.Sprintf(vehicleScheduleURL, f.vehicleID)
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, f.token)

		var items []*resdto.ScheduleItemResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &items)
		require.Len(t, items, 1)
		require.Equal(t, "UPCOMING", items[0].Timeframe)
		require.False(t, items[0].IsReservation)
	})

	s.Run("unknown vehicle returns 404", func() {
		t := s.T()
		f := s.seedFixtures(t)

		url := fmt.Sprintf(vehicleScheduleURL, uuid.New())
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, f.token)
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}
