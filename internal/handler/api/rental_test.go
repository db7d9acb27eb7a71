//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"fleetrent/internal/handler/api"
	resdto "fleetrent/internal/handler/dto/response"
	"fleetrent/internal/usecase/commands"
	"fleetrent/internal/usecase/queries"
	"fleetrent/tests/common/builder"
	"fleetrent/tests/common/httptest"
	"fleetrent/tests/common/testutil"
	commandsmock "fleetrent/tests/mock/commands"
	queriesmock "fleetrent/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RentalHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockRentalCommands
	mockQueries  *queriesmock.MockRentalQueries
	handler      *api.RentalHandler
	ownerID      uuid.UUID
}

func (s *RentalHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockRentalCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockRentalQueries(s.mockCtrl)
	s.handler = api.NewRentalHandler(s.mockCommands, s.mockQueries)
	s.ownerID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}
		c.Set("staff_id", uuid.New())
		c.Set("owner_id", s.ownerID)
		c.Next()
	}

	// Setup routes
	s.router.POST("/rentals", authMiddleware, s.handler.CreateRental)
	s.router.GET("/rentals", authMiddleware, s.handler.ListRentals)
	s.router.GET("/rentals/:id", authMiddleware, s.handler.GetRental)
	s.router.DELETE("/rentals/:id", authMiddleware, s.handler.DeleteRental)
	s.router.POST("/rentals/:id/extend", authMiddleware, s.handler.ExtendRental)
	s.router.POST("/rentals/:id/complete", authMiddleware, s.handler.CompleteRental)
	s.router.POST("/rentals/:id/issue", authMiddleware, s.handler.IssueRental)
	s.router.POST("/rentals/:id/settle-debt", authMiddleware, s.handler.SettleDebt)
}

func (s *RentalHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRentalHandlerSuite(t *testing.T) {
	suite.Run(t, new(RentalHandlerTestSuite))
}

type testCaseRental struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreateRental
// ================================================================================

func (s *RentalHandlerTestSuite) TestCreateRental() {
	url := "/rentals"

	reqBody := builder.NewRentalBuilder().BuildCreateRequestDTO()
	createdID := uuid.New()

	validationCases := []testCaseRental{
		{name: "missing field: vehicle_id (required)", mutate: testutil.Field("vehicle_id", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: client_id (required)", mutate: testutil.Field("client_id", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: start_at (required)", mutate: testutil.Field("start_at", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: end_at (required)", mutate: testutil.Field("end_at", nil), expectCode: http.StatusBadRequest},
		{name: "invalid booking_type", mutate: testutil.Field("booking_type", "WEEKLY"), expectCode: http.StatusBadRequest},
		{name: "invalid payment_status", mutate: testutil.Field("payment_status", "PARTIAL"), expectCode: http.StatusBadRequest},
		{name: "negative prepayment", mutate: testutil.Field("prepayment", -1), expectCode: http.StatusBadRequest},
	}

	s.Run("success: returns 201 Created for valid request", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), s.ownerID, gomock.Any()).
			Return(createdID, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var resp resdto.CreatedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &resp)
		s.Equal(createdID, resp.ID)
	})

	s.Run("validation boundary cases", func() {
		for _, tc := range validationCases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
				s.Equal(tc.expectCode, rec.Code)
			})
		}
	})

	s.Run("error: vehicle unavailable returns 409", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), s.ownerID, gomock.Any()).
			Return(uuid.Nil, commands.ErrVehicleUnavailable).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorContains(s.T(), rec, http.StatusConflict, "not available")
	})

	s.Run("error: vehicle in maintenance returns 409", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), s.ownerID, gomock.Any()).
			Return(uuid.Nil, commands.ErrVehicleInMaintenance).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorContains(s.T(), rec, http.StatusConflict, "maintenance")
	})

	s.Run("error: unknown client returns 404", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), s.ownerID, gomock.Any()).
			Return(uuid.Nil, commands.ErrClientNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorContains(s.T(), rec, http.StatusNotFound, "Client not found")
	})

	s.Run("error: invalid period returns 400", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), s.ownerID, gomock.Any()).
			Return(uuid.Nil, commands.ErrInvalidPeriod).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorContains(s.T(), rec, http.StatusBadRequest, "period")
	})

	s.Run("error: missing token returns 401", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

// ================================================================================
// TestListRentals
// ================================================================================

func (s *RentalHandlerTestSuite) TestListRentals() {
	url := "/rentals"

	s.Run("success: returns owner's rentals", func() {
		items := []*queries.RentalListItem{
			{ID: uuid.New(), VehicleName: "Toyota Camry", Status: "ACTIVE", TotalAmount: 20000, ContractNumber: "R-260310-A1B2C3"},
			{ID: uuid.New(), VehicleName: "Kia Rio", Status: "COMPLETED", TotalAmount: 15000, ContractNumber: "R-260301-D4E5F6"},
		}
		s.mockQueries.EXPECT().ListByOwner(gomock.Any(), s.ownerID).
			Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var resp []*resdto.RentalListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Len(resp, 2)
		s.Equal(items[0].ID, resp[0].ID)
		s.Equal("R-260301-D4E5F6", resp[1].ContractNumber)
	})

	s.Run("success: empty list", func() {
		s.mockQueries.EXPECT().ListByOwner(gomock.Any(), s.ownerID).
			Return([]*queries.RentalListItem{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)
	})
}

// ================================================================================
// TestGetRental
// ================================================================================

func (s *RentalHandlerTestSuite) TestGetRental() {
	rentalID := uuid.New()
	url := "/rentals/" + rentalID.String()

	s.Run("success: returns the rental with extensions", func() {
		view := &queries.RentalView{
			ID:             rentalID,
			VehicleName:    "Toyota Camry",
			Status:         "ACTIVE",
			PaymentStatus:  "PAID",
			TotalAmount:    30000,
			ContractNumber: "R-260310-A1B2C3",
			Extensions: []queries.ExtensionView{
				{EndAt: time.Date(2026, 3, 13, 10, 0, 0, 0, time.UTC), Amount: 10000},
			},
		}
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.ownerID, rentalID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var resp resdto.RentalResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal(rentalID, resp.ID)
		s.Equal("R-260310-A1B2C3", resp.ContractNumber)
		s.Len(resp.Extensions, 1)
		s.Equal(int64(10000), resp.Extensions[0].Amount)
	})

	s.Run("error: unknown rental returns 404", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.ownerID, rentalID).
			Return(nil, queries.ErrRentalNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorContains(s.T(), rec, http.StatusNotFound, "Rental not found")
	})

	s.Run("error: malformed id returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rentals/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorContains(s.T(), rec, http.StatusBadRequest, "Invalid ID")
	})
}

// ================================================================================
// TestExtendRental
// ================================================================================

func (s *RentalHandlerTestSuite) TestExtendRental() {
	rentalID := uuid.New()
	url := "/rentals/" + rentalID.String() + "/extend"
	newEnd := time.Date(2026, 3, 13, 10, 0, 0, 0, time.UTC)
	reqBody := map[string]any{
		"new_end_at":     newEnd.Format(time.RFC3339),
		"payment_status": "PAID",
	}

	s.Run("success: returns the added amount", func() {
		s.mockCommands.EXPECT().Extend(gomock.Any(), s.ownerID, rentalID, newEnd, gomock.Any()).
			Return(int64(10000), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var resp resdto.ExtendedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal(rentalID, resp.ID)
		s.Equal(int64(10000), resp.AddedAmount)
	})

	s.Run("validation: missing new_end_at", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("new_end_at", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("validation: invalid payment_status", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("payment_status", "PARTIAL"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: end not after current returns 400", func() {
		s.mockCommands.EXPECT().Extend(gomock.Any(), s.ownerID, rentalID, newEnd, gomock.Any()).
			Return(int64(0), commands.ErrInvalidPeriod).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorContains(s.T(), rec, http.StatusBadRequest, "period")
	})

	s.Run("error: inactive rental returns 422", func() {
		s.mockCommands.EXPECT().Extend(gomock.Any(), s.ownerID, rentalID, newEnd, gomock.Any()).
			Return(int64(0), commands.ErrRentalNotActive).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorContains(s.T(), rec, http.StatusUnprocessableEntity, "not active")
	})
}

// ================================================================================
// Lifecycle commands
// ================================================================================

func (s *RentalHandlerTestSuite) TestCompleteRental() {
	rentalID := uuid.New()
	url := "/rentals/" + rentalID.String() + "/complete"

	s.Run("success: returns 204", func() {
		s.mockCommands.EXPECT().Complete(gomock.Any(), s.ownerID, rentalID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: unknown rental returns 404", func() {
		s.mockCommands.EXPECT().Complete(gomock.Any(), s.ownerID, rentalID).
			Return(commands.ErrRentalNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorContains(s.T(), rec, http.StatusNotFound, "Rental not found")
	})

	s.Run("error: already completed returns 422", func() {
		s.mockCommands.EXPECT().Complete(gomock.Any(), s.ownerID, rentalID).
			Return(commands.ErrRentalNotActive).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorContains(s.T(), rec, http.StatusUnprocessableEntity, "not active")
	})
}

func (s *RentalHandlerTestSuite) TestIssueRental() {
	rentalID := uuid.New()
	url := "/rentals/" + rentalID.String() + "/issue"

	s.Run("success: returns 204", func() {
		s.mockCommands.EXPECT().Issue(gomock.Any(), s.ownerID, rentalID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: not a reservation returns 422", func() {
		s.mockCommands.EXPECT().Issue(gomock.Any(), s.ownerID, rentalID).
			Return(commands.ErrNotReservation).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorContains(s.T(), rec, http.StatusUnprocessableEntity, "reservation")
	})
}

func (s *RentalHandlerTestSuite) TestSettleDebt() {
	rentalID := uuid.New()
	url := "/rentals/" + rentalID.String() + "/settle-debt"

	s.Run("success: returns 204", func() {
		s.mockCommands.EXPECT().SettleDebt(gomock.Any(), s.ownerID, rentalID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: no outstanding debt returns 422", func() {
		s.mockCommands.EXPECT().SettleDebt(gomock.Any(), s.ownerID, rentalID).
			Return(commands.ErrNotInDebt).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorContains(s.T(), rec, http.StatusUnprocessableEntity, "debt")
	})
}

func (s *RentalHandlerTestSuite) TestDeleteRental() {
	rentalID := uuid.New()
	url := "/rentals/" + rentalID.String()

	s.Run("success: returns 204", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), s.ownerID, rentalID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: malformed id returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/rentals/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorContains(s.T(), rec, http.StatusBadRequest, "Invalid ID")
	})
}
