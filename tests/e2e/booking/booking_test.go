//go:build e2e

package booking_test

import (
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
	publicSubmitURL = "/api/public/booking-requests"
	requestsURL     = "/api/booking-requests"
)

type BookingSuite struct {
	e2e.SharedSuite
}

func (s *BookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

type bookingFixtures struct {
	vehicleID uuid.UUID
	clientID  uuid.UUID
	token     string
	start     time.Time
	end       time.Time
}

func (s *BookingSuite) seedFixtures(t *testing.T) bookingFixtures {
	t.Helper()

	vehicleID := dbtest.CreateTestVehicle(t, s.DB, dbtest.DefaultOwnerID, "Kia Rio", "01 BB 222", 8000, 400)
	clientID := dbtest.CreateTestClient(t, s.DB, dbtest.DefaultOwnerID, "Aram Petrosyan", "+37491123456")
	token := authtest.IssueToken(t, s.Config, uuid.New(), dbtest.DefaultOwnerID, "manager")

	start := time.Now().UTC().Add(24 * time.Hour).Truncate(time.Second)
	return bookingFixtures{
		vehicleID: vehicleID,
		clientID:  clientID,
		token:     token,
		start:     start,
		end:       start.Add(72 * time.Hour),
	}
}

func (s *BookingSuite) guestSubmitDTO(f bookingFixtures) reqdto.SubmitBookingRequest {
	return reqdto.SubmitBookingRequest{
		VehicleID:    f.vehicleID,
		ContactName:  "Walk-in Guest",
		ContactPhone: "+37499887766",
		StartAt:      f.start,
		EndAt:        f.end,
	}
}

// Submit posts without a token because the endpoint is public.
func (s *BookingSuite) submit(t *testing.T, body reqdto.SubmitBookingRequest) uuid.UUID {
	t.Helper()

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, publicSubmitURL, body, "")
	var created resdto.CreatedResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
	require.NotEqual(t, uuid.Nil, created.ID)
	return created.ID
}

func (s *BookingSuite) TestSubmitAndApprove() {
	s.Run("guest request is approved with a substitute client", func() {
		t := s.T()
		f := s.seedFixtures(t)

		requestID := s.submit(t, s.guestSubmitDTO(f))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, requestsURL+"/"+requestID.String(), nil, f.token)
		var view resdto.BookingRequestResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &view)
		require.Equal(t, "PENDING", view.Status)
		require.Nil(t, view.ClientID)

		approveBody := reqdto.ApproveBookingRequest{ClientID: &f.clientID}
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, requestsURL+"/"+requestID.String()+"/approve", approveBody, f.token)
		var approved resdto.ApprovedResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &approved)

		// Approval consumes the request and leaves a daily paid rental behind
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, requestsURL+"/"+requestID.String(), nil, f.token)
		require.Equal(t, http.StatusNotFound, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/rentals/"+approved.RentalID.String(), nil, f.token)
		var rentalView resdto.RentalResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &rentalView)
		require.Equal(t, f.clientID, rentalView.ClientID)
		require.Equal(t, "DAILY", rentalView.BookingType)
		require.Equal(t, "PAID", rentalView.PaymentStatus)
		require.Equal(t, int64(24000), rentalView.TotalAmount) // 3 days * 8000
	})

	s.Run("guest request without a client cannot be approved", func() {
		t := s.T()
		f := s.seedFixtures(t)

		requestID := s.submit(t, s.guestSubmitDTO(f))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, requestsURL+"/"+requestID.String()+"/approve", nil, f.token)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, requestsURL+"/"+requestID.String(), nil, f.token)
		var view resdto.BookingRequestResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &view)
		require.Equal(t, "PENDING", view.Status)
	})

	s.Run("approval fails when the window was taken", func() {
		t := s.T()
		f := s.seedFixtures(t)

		body := s.guestSubmitDTO(f)
		body.ClientID = &f.clientID
		requestID := s.submit(t, body)

		rentalBody := reqdto.CreateRentalRequest{
			VehicleID:     f.vehicleID,
			ClientID:      f.clientID,
			StartAt:       f.start,
			EndAt:         f.end,
			BookingType:   "DAILY",
			PaymentStatus: "PAID",
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/rentals", rentalBody, f.token)
		require.Equal(t, http.StatusCreated, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, requestsURL+"/"+requestID.String()+"/approve", nil, f.token)
		httptest.AssertErrorContains(t, w, http.StatusConflict, "not available")

		// The request survives a failed approval
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, requestsURL+"/"+requestID.String(), nil, f.token)
		var view resdto.BookingRequestResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &view)
		require.Equal(t, "PENDING", view.Status)
	})

	s.Run("occupied window rejects submission", func() {
		t := s.T()
		f := s.seedFixtures(t)

		rentalBody := reqdto.CreateRentalRequest{
			VehicleID:     f.vehicleID,
			ClientID:      f.clientID,
			StartAt:       f.start,
			EndAt:         f.end,
			BookingType:   "DAILY",
			PaymentStatus: "PAID",
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/rentals", rentalBody, f.token)
		require.Equal(t, http.StatusCreated, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, publicSubmitURL, s.guestSubmitDTO(f), "")
		httptest.AssertErrorContains(t, w, http.StatusConflict, "not available")
	})
}

func (s *BookingSuite) TestRejectAndList() {
	s.Run("rejected request stays visible as REJECTED", func() {
		t := s.T()
		f := s.seedFixtures(t)

		requestID := s.submit(t, s.guestSubmitDTO(f))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, requestsURL+"/"+requestID.String()+"/reject", nil, f.token)
		require.Equal(t, http.StatusNoContent, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, requestsURL+"/"+requestID.String(), nil, f.token)
		var view resdto.BookingRequestResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &view)
		require.Equal(t, "REJECTED", view.Status)

		// A rejected request cannot be approved afterwards
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, requestsURL+"/"+requestID.String()+"/approve", nil, f.token)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	s.Run("listing requires authentication", func() {
		t := s.T()
		f := s.seedFixtures(t)

		s.submit(t, s.guestSubmitDTO(f))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, requestsURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, requestsURL, nil, f.token)
		var list []*resdto.BookingRequestResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &list)
		require.Len(t, list, 1)
		require.Equal(t, "Walk-in Guest", list[0].ContactName)
	})
}
