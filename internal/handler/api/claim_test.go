//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"splitpay/internal/handler/api"
	reqdto "splitpay/internal/handler/dto/request"
	"splitpay/internal/handler/middleware"
	"splitpay/internal/pkg/sessiontoken"
	"splitpay/internal/usecase/commands"
	"splitpay/internal/usecase/queries"
	"splitpay/tests/common/builder"
	commonhttp "splitpay/tests/common/httptest"
	"splitpay/tests/common/testutil"
	commandsmock "splitpay/tests/mock/commands"
	queriesmock "splitpay/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ClaimHandlerTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	claimCmds    *commandsmock.MockClaimCommands
	availability *queriesmock.MockAvailabilityQueries
	router       *gin.Engine
	sessionToken string
}

func (s *ClaimHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	s.ctrl = gomock.NewController(s.T())
	s.claimCmds = commandsmock.NewMockClaimCommands(s.ctrl)
	s.availability = queriesmock.NewMockAvailabilityQueries(s.ctrl)

	tokens := sessiontoken.NewService("test-secret", time.Hour)
	token, _, err := tokens.Issue(time.Now())
	s.Require().NoError(err)
	s.sessionToken = token

	claimHandler := api.NewClaimHandler(s.claimCmds, s.availability)
	webhookHandler := api.NewWebhookHandler(s.claimCmds)
	session := middleware.NewSessionMiddleware(tokens)

	s.router = gin.New()
	apiGroup := s.router.Group("/api")
	apiGroup.POST("/orders/:id/claims", session.OptionalSession(), claimHandler.CreateClaim)
	apiGroup.GET("/claims/:id", claimHandler.GetClaim)

	authed := apiGroup.Group("/claims", session.RequireSession())
	authed.POST("/:id/start", claimHandler.StartPayment)
	authed.POST("/:id/cancel", claimHandler.CancelClaim)

	apiGroup.POST("/webhooks/payment", webhookHandler.PaymentOutcome)
}

func (s *ClaimHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestClaimHandlerSuite(t *testing.T) {
	suite.Run(t, new(ClaimHandlerTestSuite))
}

// ================================================================================
// POST /api/orders/:id/claims
// ================================================================================

func (s *ClaimHandlerTestSuite) TestCreateClaim() {
	orderID := uuid.New()
	path := "/api/orders/" + orderID.String() + "/claims"

	s.Run("first-time device gets a minted session back", func() {
		view := builder.NewClaimBuilder().WithOrderID(orderID).BuildView()
		s.claimCmds.EXPECT().
			CreateClaim(gomock.Any(), orderID, int64(2500), gomock.Nil()).
			Return(&commands.CreateClaimResult{Claim: view, SessionToken: "fresh-token"}, nil)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, path,
			gin.H{"amount_cents": 2500}, "")

		s.Equal(http.StatusCreated, w.Code)

		var body map[string]any
		commonhttp.DecodeResponseBody(s.T(), w.Body, &body)
		s.Equal("fresh-token", body["session_token"])

		claimBody, ok := body["claim"].(map[string]any)
		s.Require().True(ok)
		s.Equal(view.ID.String(), claimBody["id"])
		s.Equal(float64(2500), claimBody["claimed_amount_cents"])
	})

	s.Run("returning device's token is passed through", func() {
		view := builder.NewClaimBuilder().WithOrderID(orderID).BuildView()
		s.claimCmds.EXPECT().
			CreateClaim(gomock.Any(), orderID, int64(1000), gomock.Any()).
			DoAndReturn(func(_ any, _ uuid.UUID, _ int64, token *string) (*commands.CreateClaimResult, error) {
				s.Require().NotNil(token)
				s.Equal(s.sessionToken, *token)
				return &commands.CreateClaimResult{Claim: view, SessionToken: *token}, nil
			})

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, path,
			gin.H{"amount_cents": 1000}, s.sessionToken)

		s.Equal(http.StatusCreated, w.Code)
	})

	s.Run("insufficient availability reports the figures", func() {
		s.claimCmds.EXPECT().
			CreateClaim(gomock.Any(), orderID, int64(9000), gomock.Nil()).
			Return(nil, &commands.InsufficientAmountError{
				AvailableAmountCents: 2000,
				TotalAmountCents:     10000,
				TotalClaimedCents:    8000,
			})

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, path,
			gin.H{"amount_cents": 9000}, "")

		s.Equal(http.StatusConflict, w.Code)

		var body map[string]any
		commonhttp.DecodeResponseBody(s.T(), w.Body, &body)
		detail, ok := body["detail"].(map[string]any)
		s.Require().True(ok)
		s.Equal(float64(2000), detail["available_amount_cents"])
		s.Equal(float64(10000), detail["total_amount_cents"])
		s.Equal(float64(8000), detail["total_claimed_cents"])
	})

	s.Run("unknown order", func() {
		s.claimCmds.EXPECT().
			CreateClaim(gomock.Any(), orderID, int64(100), gomock.Nil()).
			Return(nil, commands.ErrOrderNotFound)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, path,
			gin.H{"amount_cents": 100}, "")

		s.Equal(http.StatusNotFound, w.Code)
	})

	s.Run("closed order", func() {
		s.claimCmds.EXPECT().
			CreateClaim(gomock.Any(), orderID, int64(100), gomock.Nil()).
			Return(nil, commands.ErrOrderClosed)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, path,
			gin.H{"amount_cents": 100}, "")

		s.Equal(http.StatusConflict, w.Code)
	})

	s.Run("malformed order id", func() {
		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost,
			"/api/orders/not-a-uuid/claims", gin.H{"amount_cents": 100}, "")

		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("non-positive amount fails binding", func() {
		valid := builder.NewClaimBuilder().BuildCreateRequestDTO()
		for _, body := range []map[string]any{
			testutil.DtoMap(s.T(), valid, testutil.Field("amount_cents", 0)),
			testutil.DtoMap(s.T(), valid, testutil.Field("amount_cents", -50)),
			testutil.DtoMap(s.T(), valid, testutil.Field("amount_cents", nil)),
		} {
			w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, path, body, "")
			s.Equal(http.StatusBadRequest, w.Code)
		}
	})

	s.Run("garbage token is rejected instead of minting a second session", func() {
		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, path,
			gin.H{"amount_cents": 100}, "not-a-jwt")

		s.Equal(http.StatusUnauthorized, w.Code)
	})
}

// ================================================================================
// POST /api/claims/:id/start
// ================================================================================

func (s *ClaimHandlerTestSuite) TestStartPayment() {
	claimID := uuid.New()
	path := "/api/claims/" + claimID.String() + "/start"

	s.Run("moves the claim to processing", func() {
		view := builder.NewClaimBuilder().WithID(claimID).AsProcessing().BuildView()
		s.claimCmds.EXPECT().
			StartPayment(gomock.Any(), claimID, s.sessionToken).
			Return(view, nil)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, path, nil, s.sessionToken)

		s.Equal(http.StatusOK, w.Code)

		var body map[string]any
		commonhttp.DecodeResponseBody(s.T(), w.Body, &body)
		s.Equal("processing", body["status"])
	})

	s.Run("missing token", func() {
		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, path, nil, "")
		s.Equal(http.StatusUnauthorized, w.Code)
	})

	s.Run("invalid token", func() {
		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, path, nil, "bogus")
		s.Equal(http.StatusUnauthorized, w.Code)
	})

	s.Run("expired claim reads as gone", func() {
		s.claimCmds.EXPECT().
			StartPayment(gomock.Any(), claimID, s.sessionToken).
			Return(nil, commands.ErrClaimExpired)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, path, nil, s.sessionToken)

		s.Equal(http.StatusGone, w.Code)
	})

	s.Run("foreign claim reads as not found", func() {
		s.claimCmds.EXPECT().
			StartPayment(gomock.Any(), claimID, s.sessionToken).
			Return(nil, commands.ErrClaimNotFound)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, path, nil, s.sessionToken)

		s.Equal(http.StatusNotFound, w.Code)
	})
}

// ================================================================================
// POST /api/claims/:id/cancel
// ================================================================================

func (s *ClaimHandlerTestSuite) TestCancelClaim() {
	claimID := uuid.New()
	path := "/api/claims/" + claimID.String() + "/cancel"

	s.Run("releases the claim", func() {
		view := builder.NewClaimBuilder().WithID(claimID).BuildView()
		view.Status = "cancelled"
		s.claimCmds.EXPECT().
			CancelClaim(gomock.Any(), claimID, s.sessionToken).
			Return(view, nil)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, path, nil, s.sessionToken)

		s.Equal(http.StatusOK, w.Code)
	})

	s.Run("terminal claim conflicts", func() {
		s.claimCmds.EXPECT().
			CancelClaim(gomock.Any(), claimID, s.sessionToken).
			Return(nil, commands.ErrClaimNotCancellable)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, path, nil, s.sessionToken)

		s.Equal(http.StatusConflict, w.Code)
	})
}

// ================================================================================
// GET /api/claims/:id
// ================================================================================

func (s *ClaimHandlerTestSuite) TestGetClaim() {
	claimID := uuid.New()
	path := "/api/claims/" + claimID.String()

	s.Run("returns the claim", func() {
		view := builder.NewClaimBuilder().WithID(claimID).BuildView()
		s.availability.EXPECT().GetClaim(gomock.Any(), claimID).Return(view, nil)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, path, nil, "")

		s.Equal(http.StatusOK, w.Code)

		var body map[string]any
		commonhttp.DecodeResponseBody(s.T(), w.Body, &body)
		s.Equal(claimID.String(), body["id"])
		s.Equal(float64(view.TotalToPayCents), body["total_to_pay_cents"])
	})

	s.Run("unknown claim", func() {
		s.availability.EXPECT().GetClaim(gomock.Any(), claimID).
			Return(nil, queries.ErrClaimNotFound)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, path, nil, "")

		s.Equal(http.StatusNotFound, w.Code)
	})
}

// ================================================================================
// POST /api/webhooks/payment
// ================================================================================

func (s *ClaimHandlerTestSuite) TestPaymentWebhook() {
	claimID := uuid.New()
	path := "/api/webhooks/payment"

	s.Run("accepted outcome", func() {
		s.claimCmds.EXPECT().
			ApplyPaymentOutcome(gomock.Any(), claimID, gomock.Any(), "proc-1").
			Return(nil)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, path,
			gin.H{"claim_id": claimID.String(), "outcome": "succeeded", "processor_ref": "proc-1"}, "")

		s.Equal(http.StatusOK, w.Code)

		var body map[string]string
		commonhttp.DecodeResponseBody(s.T(), w.Body, &body)
		s.Equal("accepted", body["status"])
	})

	s.Run("unknown claim", func() {
		s.claimCmds.EXPECT().
			ApplyPaymentOutcome(gomock.Any(), claimID, gomock.Any(), "proc-2").
			Return(commands.ErrClaimNotFound)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, path,
			gin.H{"claim_id": claimID.String(), "outcome": "failed", "processor_ref": "proc-2"}, "")

		s.Equal(http.StatusNotFound, w.Code)
	})

	s.Run("binding failures", func() {
		valid := reqdto.PaymentWebhookRequest{
			ClaimID:      claimID.String(),
			Outcome:      "succeeded",
			ProcessorRef: "proc-3",
		}
		for _, body := range []map[string]any{
			testutil.DtoMap(s.T(), valid, testutil.Field("outcome", "refunded")),
			testutil.DtoMap(s.T(), valid, testutil.Field("claim_id", "nope")),
			testutil.DtoMap(s.T(), valid, testutil.Field("claim_id", nil)),
		} {
			w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, path, body, "")
			s.Equal(http.StatusBadRequest, w.Code)
		}
	})
}
