package handler

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	journeymodels "crewdock/internal/journey/models"
	"crewdock/internal/platform/middleware"
	profilemodels "crewdock/internal/profile/models"
	"crewdock/internal/registration/handler/mocks"
	regmodels "crewdock/internal/registration/models"
	"crewdock/internal/registration/service"
	"crewdock/internal/registration/store"
	id "crewdock/pkg/domain"
	dErrors "crewdock/pkg/domain-errors"
	"crewdock/pkg/testutil"
)

type HandlerSuite struct {
	suite.Suite
	handler *Handler
	service *mocks.MockService
	crewID  id.UserID
	ownerID id.UserID
	now     time.Time
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.T().Cleanup(ctrl.Finish)

	s.service = mocks.NewMockService(ctrl)
	s.handler = New(s.service, testutil.DiscardLogger(), nil)
	s.crewID = id.UserID(uuid.New())
	s.ownerID = id.UserID(uuid.New())
	s.now = time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
}

// request builds an authenticated request with an optional registrationID
// path parameter, the way chi and the auth middleware would.
func (s *HandlerSuite) request(method, path string, body any, actor id.UserID, regID *id.RegistrationID) *http.Request {
	var req *http.Request
	if body != nil {
		req = testutil.NewJSONRequest(s.T(), method, path, body)
	} else {
		req = testutil.NewRequest(s.T(), method, path)
	}
	req = testutil.WithActor(req, actor, id.RoleCrew)
	req = testutil.WithFrozenTime(req, s.now)

	if regID != nil {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("registrationID", regID.String())
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	}
	return req
}

func (s *HandlerSuite) sampleRegistration() *regmodels.Registration {
	return regmodels.NewRegistration(id.LegID(uuid.New()), s.crewID, "keen", s.now)
}

func (s *HandlerSuite) TestHandleCreate() {
	legID := id.LegID(uuid.New())

	s.Run("valid request returns 201 with the registration", func() {
		reg := regmodels.NewRegistration(legID, s.crewID, "keen", s.now)
		s.service.EXPECT().
			Create(gomock.Any(), service.CreateInput{LegID: legID, UserID: s.crewID, Notes: "keen"}).
			Return(&service.CreateResult{Registration: reg, AssessmentScheduled: true}, nil)

		req := s.request(http.MethodPost, "/registrations",
			map[string]any{"legId": legID.String(), "notes": "keen"}, s.crewID, nil)
		rr := testutil.DoRequest(http.HandlerFunc(s.handler.HandleCreate), req)

		testutil.AssertStatus(s.T(), rr, http.StatusCreated)
		resp := testutil.UnmarshalResponse[CreateRegistrationResponse](s.T(), rr)
		s.Equal(reg.ID, resp.Registration.ID)
		s.Equal("Pending approval", resp.Registration.Status)
		s.True(resp.AssessmentScheduled)
	})

	s.Run("missing legId is a 400", func() {
		req := s.request(http.MethodPost, "/registrations", map[string]any{"notes": "keen"}, s.crewID, nil)
		rr := testutil.DoRequest(http.HandlerFunc(s.handler.HandleCreate), req)
		testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, "bad_request")
	})

	s.Run("malformed legId is a 400", func() {
		req := s.request(http.MethodPost, "/registrations", map[string]any{"legId": "not-a-uuid"}, s.crewID, nil)
		rr := testutil.DoRequest(http.HandlerFunc(s.handler.HandleCreate), req)
		testutil.AssertStatus(s.T(), rr, http.StatusBadRequest)
	})

	s.Run("service conflict maps to 409", func() {
		s.service.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(nil, dErrors.New(dErrors.CodeConflict, "an active registration already exists for this leg"))

		req := s.request(http.MethodPost, "/registrations",
			map[string]any{"legId": legID.String()}, s.crewID, nil)
		rr := testutil.DoRequest(http.HandlerFunc(s.handler.HandleCreate), req)
		testutil.AssertStatusAndError(s.T(), rr, http.StatusConflict, "conflict")
	})

	s.Run("validation violation maps to 400", func() {
		s.service.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(nil, dErrors.New(dErrors.CodeInvalidInput, "missing_required_answers: a,b"))

		req := s.request(http.MethodPost, "/registrations",
			map[string]any{"legId": legID.String()}, s.crewID, nil)
		rr := testutil.DoRequest(http.HandlerFunc(s.handler.HandleCreate), req)
		testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, "invalid_input")
	})
}

func (s *HandlerSuite) TestHandleListMine() {
	s.Run("lists the actor's registrations", func() {
		reg := s.sampleRegistration()
		s.service.EXPECT().
			ListMine(gomock.Any(), s.crewID, store.ListFilter{}).
			Return([]*regmodels.Registration{reg}, nil)

		req := s.request(http.MethodGet, "/registrations", nil, s.crewID, nil)
		rr := testutil.DoRequest(http.HandlerFunc(s.handler.HandleListMine), req)

		testutil.AssertStatusOK(s.T(), rr)
		resp := testutil.UnmarshalResponse[[]*RegistrationResponse](s.T(), rr)
		s.Require().Len(*resp, 1)
		s.Equal(reg.ID, (*resp)[0].ID)
	})

	s.Run("status filter is parsed", func() {
		s.service.EXPECT().
			ListMine(gomock.Any(), s.crewID, store.ListFilter{Status: id.StatusCancelled}).
			Return(nil, nil)

		req := s.request(http.MethodGet, "/registrations?status=Cancelled", nil, s.crewID, nil)
		rr := testutil.DoRequest(http.HandlerFunc(s.handler.HandleListMine), req)
		testutil.AssertStatusOK(s.T(), rr)
	})

	s.Run("unknown status filter is a 400", func() {
		req := s.request(http.MethodGet, "/registrations?status=Rejected", nil, s.crewID, nil)
		rr := testutil.DoRequest(http.HandlerFunc(s.handler.HandleListMine), req)
		testutil.AssertStatus(s.T(), rr, http.StatusBadRequest)
	})
}

func (s *HandlerSuite) TestHandleCancel() {
	reg := s.sampleRegistration()
	s.Require().NoError(reg.Cancel(s.now))

	s.Run("cancel returns the updated registration", func() {
		s.service.EXPECT().
			Cancel(gomock.Any(), reg.ID, s.crewID).
			Return(reg, nil)

		req := s.request(http.MethodPost, "/registrations/"+reg.ID.String()+"/cancel", nil, s.crewID, &reg.ID)
		rr := testutil.DoRequest(http.HandlerFunc(s.handler.HandleCancel), req)

		testutil.AssertStatusOK(s.T(), rr)
		resp := testutil.UnmarshalResponse[RegistrationResponse](s.T(), rr)
		s.Equal("Cancelled", resp.Status)
	})

	s.Run("forbidden maps to 403", func() {
		stranger := id.UserID(uuid.New())
		s.service.EXPECT().
			Cancel(gomock.Any(), reg.ID, stranger).
			Return(nil, dErrors.New(dErrors.CodeForbidden, "only the registering crew member may cancel"))

		req := s.request(http.MethodPost, "/registrations/"+reg.ID.String()+"/cancel", nil, stranger, &reg.ID)
		rr := testutil.DoRequest(http.HandlerFunc(s.handler.HandleCancel), req)
		testutil.AssertStatusAndError(s.T(), rr, http.StatusForbidden, "forbidden")
	})

	s.Run("malformed registration id is a 400", func() {
		req := testutil.NewRequest(s.T(), http.MethodPost, "/registrations/garbage/cancel")
		req = testutil.WithActor(req, s.crewID, id.RoleCrew)
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("registrationID", "garbage")
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

		rr := testutil.DoRequest(http.HandlerFunc(s.handler.HandleCancel), req)
		testutil.AssertStatus(s.T(), rr, http.StatusBadRequest)
	})
}

func (s *HandlerSuite) TestHandleApprove() {
	reg := s.sampleRegistration()
	s.Require().NoError(reg.Approve("welcome", nil, false, s.now))

	s.service.EXPECT().
		Approve(gomock.Any(), reg.ID, s.ownerID, "welcome").
		Return(reg, nil)

	req := s.request(http.MethodPost, "/registrations/"+reg.ID.String()+"/approve",
		map[string]any{"notes": "welcome"}, s.ownerID, &reg.ID)
	rr := testutil.DoRequest(http.HandlerFunc(s.handler.HandleApprove), req)

	testutil.AssertStatusOK(s.T(), rr)
	resp := testutil.UnmarshalResponse[RegistrationResponse](s.T(), rr)
	s.Equal("Approved", resp.Status)
}

func (s *HandlerSuite) TestHandleDecline() {
	reg := s.sampleRegistration()
	s.Require().NoError(reg.Decline("not enough miles", false, s.now))

	s.service.EXPECT().
		Decline(gomock.Any(), reg.ID, s.ownerID, "not enough miles").
		Return(reg, nil)

	req := s.request(http.MethodPost, "/registrations/"+reg.ID.String()+"/decline",
		map[string]any{"notes": "not enough miles"}, s.ownerID, &reg.ID)
	rr := testutil.DoRequest(http.HandlerFunc(s.handler.HandleDecline), req)

	testutil.AssertStatusOK(s.T(), rr)
	resp := testutil.UnmarshalResponse[RegistrationResponse](s.T(), rr)
	s.Equal("Not approved", resp.Status)
}

func (s *HandlerSuite) TestHandleReplaceAnswers() {
	reg := s.sampleRegistration()
	reqID := id.RequirementID(uuid.New())
	answer := "Yes"

	s.Run("valid replacement returns the new set", func() {
		s.service.EXPECT().
			ReplaceAnswers(gomock.Any(), reg.ID, s.crewID, gomock.Any()).
			Return([]regmodels.Answer{{
				ID:            id.NewAnswerID(),
				RequirementID: reqID,
				AnswerText:    &answer,
			}}, nil)

		req := s.request(http.MethodPost, "/registrations/"+reg.ID.String()+"/answers",
			map[string]any{"answers": []map[string]any{
				{"requirementId": reqID.String(), "answerText": answer},
			}}, s.crewID, &reg.ID)
		rr := testutil.DoRequest(http.HandlerFunc(s.handler.HandleReplaceAnswers), req)

		testutil.AssertStatusOK(s.T(), rr)
		resp := testutil.UnmarshalResponse[[]AnswerResponse](s.T(), rr)
		s.Require().Len(*resp, 1)
		s.Equal(reqID, (*resp)[0].RequirementID)
	})

	s.Run("empty answer set is a 400", func() {
		req := s.request(http.MethodPost, "/registrations/"+reg.ID.String()+"/answers",
			map[string]any{"answers": []any{}}, s.crewID, &reg.ID)
		rr := testutil.DoRequest(http.HandlerFunc(s.handler.HandleReplaceAnswers), req)
		testutil.AssertStatus(s.T(), rr, http.StatusBadRequest)
	})
}

func (s *HandlerSuite) TestHandleDetails() {
	reg := s.sampleRegistration()
	matches := true
	experience := 5
	profile := profilemodels.CrewProfile{
		UserID:            s.crewID,
		DisplayName:       "Alex Mariner",
		Skills:            []profilemodels.Skill{{Name: "navigation"}},
		RiskLevels:        []string{"offshore"},
		SailingExperience: &experience,
	}

	s.service.EXPECT().
		DetailsForOwner(gomock.Any(), reg.ID, s.ownerID).
		Return(&service.Details{
			Registration: reg,
			CrewProfile:  &profile,
			Answers: []service.AnsweredRequirement{
				{
					RequirementID: id.RequirementID(uuid.New()),
					QuestionText:  "Describe your experience",
					QuestionType:  id.QuestionTypeText,
					IsRequired:    true,
					Answered:      true,
				},
				{
					RequirementID: id.RequirementID(uuid.New()),
					QuestionText:  "Dietary restrictions",
					QuestionType:  id.QuestionTypeText,
				},
			},
			Effective: journeymodels.EffectiveAttributes{
				Skills:        []string{"navigation", "sailing"},
				MinExperience: &experience,
			},
			SkillMatchPercentage:   75,
			ExperienceLevelMatches: &matches,
		}, nil)

	req := s.request(http.MethodGet, "/registrations/"+reg.ID.String()+"/details", nil, s.ownerID, &reg.ID)
	rr := testutil.DoRequest(http.HandlerFunc(s.handler.HandleDetails), req)

	testutil.AssertStatusOK(s.T(), rr)
	resp := testutil.UnmarshalResponse[DetailsResponse](s.T(), rr)
	s.Equal(75, resp.SkillMatchPercentage)
	s.Require().NotNil(resp.ExperienceLevelMatches)
	s.True(*resp.ExperienceLevelMatches)
	s.Equal("Alex Mariner", resp.CrewProfile.DisplayName)
	s.Equal([]string{"navigation", "sailing"}, resp.Effective.Skills)
	s.Require().NotNil(resp.Effective.MinExperience)
	s.Equal(5, *resp.Effective.MinExperience)
	s.Require().Len(resp.Answers, 2)
	s.True(resp.Answers[0].Answered)
	s.False(resp.Answers[1].Answered, "unanswered requirements still appear in the view")
}

// staticValidator accepts any token and returns the same claims every time.
type staticValidator struct {
	claims middleware.TokenClaims
}

func (v staticValidator) ValidateToken(string) (*middleware.TokenClaims, error) {
	c := v.claims
	return &c, nil
}

// mount builds the full route tree behind the auth middleware, with tokens
// resolving to the given identity.
func (s *HandlerSuite) mount(userID id.UserID, role id.Role) http.Handler {
	router := chi.NewRouter()
	h := New(s.service, testutil.DiscardLogger(), staticValidator{
		claims: middleware.TokenClaims{UserID: userID, Role: role},
	})
	h.Register(router)
	return router
}

func (s *HandlerSuite) TestRegisterRoutesByRole() {
	s.Run("owner cannot register for a leg", func() {
		router := s.mount(s.ownerID, id.RoleOwner)

		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/registrations",
			map[string]any{"legId": uuid.NewString()})
		req.Header.Set("Authorization", "Bearer token")
		rr := testutil.DoRequest(router, req)

		testutil.AssertStatusAndError(s.T(), rr, http.StatusForbidden, "forbidden")
	})

	s.Run("owner cannot cancel or resubmit answers", func() {
		router := s.mount(s.ownerID, id.RoleOwner)
		regID := id.RegistrationID(uuid.New())

		for _, path := range []string{
			"/registrations/" + regID.String() + "/cancel",
			"/registrations/" + regID.String() + "/answers",
		} {
			req := testutil.NewJSONRequest(s.T(), http.MethodPost, path, map[string]any{})
			req.Header.Set("Authorization", "Bearer token")
			rr := testutil.DoRequest(router, req)
			testutil.AssertStatus(s.T(), rr, http.StatusForbidden)
		}
	})

	s.Run("crew member registers through the same route", func() {
		router := s.mount(s.crewID, id.RoleCrew)
		legID := id.LegID(uuid.New())
		reg := regmodels.NewRegistration(legID, s.crewID, "", s.now)
		s.service.EXPECT().
			Create(gomock.Any(), service.CreateInput{LegID: legID, UserID: s.crewID}).
			Return(&service.CreateResult{Registration: reg}, nil)

		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/registrations",
			map[string]any{"legId": legID.String()})
		req.Header.Set("Authorization", "Bearer token")
		rr := testutil.DoRequest(router, req)

		testutil.AssertStatus(s.T(), rr, http.StatusCreated)
	})

	s.Run("owner still reaches the review routes", func() {
		router := s.mount(s.ownerID, id.RoleOwner)
		regID := id.RegistrationID(uuid.New())
		s.service.EXPECT().
			DetailsForOwner(gomock.Any(), regID, s.ownerID).
			Return(nil, dErrors.New(dErrors.CodeNotFound, "registration not found"))

		req := testutil.NewRequest(s.T(), http.MethodGet, "/registrations/"+regID.String()+"/details")
		req.Header.Set("Authorization", "Bearer token")
		rr := testutil.DoRequest(router, req)

		testutil.AssertStatus(s.T(), rr, http.StatusNotFound)
	})

	s.Run("missing token is a 401", func() {
		router := s.mount(s.crewID, id.RoleCrew)
		req := testutil.NewRequest(s.T(), http.MethodGet, "/registrations")
		rr := testutil.DoRequest(router, req)
		testutil.AssertStatusAndError(s.T(), rr, http.StatusUnauthorized, "unauthorized")
	})
}
