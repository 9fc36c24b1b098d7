package callback

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"sscs-bulk-scan/internal/callback/mocks"
	"sscs-bulk-scan/internal/casecreation"
	storemocks "sscs-bulk-scan/internal/casecreation/mocks"
	"sscs-bulk-scan/internal/casedata"
	"sscs-bulk-scan/internal/domain"
	"sscs-bulk-scan/internal/refdata"
	"sscs-bulk-scan/pkg/requestcontext"
)

type rejectAllPostcodes struct{}

func (rejectAllPostcodes) IsValidFormat(string) bool            { return false }
func (rejectAllPostcodes) IsValid(context.Context, string) bool { return false }

type CallbackSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockTransformer *mocks.MockTransformer
	mockValidator   *mocks.MockValidator
	mockStore       *storemocks.MockCaseStore
	service         *Service
	token           domain.Token
	ctx             context.Context
}

func TestCallbackSuite(t *testing.T) {
	suite.Run(t, new(CallbackSuite))
}

func (s *CallbackSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockTransformer = mocks.NewMockTransformer(s.ctrl)
	s.mockValidator = mocks.NewMockValidator(s.ctrl)
	s.mockStore = storemocks.NewMockCaseStore(s.ctrl)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	caseEvent := domain.DefaultCaseEvent()
	evaluator := casedata.NewEvaluator(
		caseEvent,
		[]string{"1"},
		refdata.NewOfficeLookup(refdata.DefaultOfficeTable()),
		refdata.NewVenueLookup(refdata.DefaultVenueTable()),
		rejectAllPostcodes{},
		logger,
	)
	creation := casecreation.NewService(s.mockStore, caseEvent, logger, nil, nil)
	s.service = NewService(s.mockTransformer, s.mockValidator, evaluator, creation, caseEvent, logger)
	s.token = domain.Token{UserAuthToken: "Bearer user", ServiceAuthToken: "service", UserID: "user-1"}
	s.ctx = requestcontext.WithTime(context.Background(),
		time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC))
}

func (s *CallbackSuite) TearDownTest() {
	s.ctrl.Finish()
}

func transformedResponse() domain.CaseResponse {
	return domain.CaseResponse{
		Record: &domain.CaseRecord{
			Appeal: &domain.Appeal{
				Appellant:   &domain.Appellant{Identity: &domain.Identity{Nino: "AB123456C"}},
				BenefitType: &domain.BenefitType{Code: "PIP"},
				MrnDetails:  &domain.MrnDetails{MrnDate: "2026-05-01"},
			},
		},
	}
}

func (s *CallbackSuite) TestValidateTransformErrorsShortCircuit() {
	record := domain.ExceptionRecord{ID: "rec-1"}
	failed := domain.CaseResponse{Errors: []string{"mrn_date is invalid"}}
	s.mockTransformer.EXPECT().Transform(gomock.Any(), record, true).Return(failed, nil)

	resp, err := s.service.Validate(s.ctx, record)

	s.Require().NoError(err)
	s.Equal([]string{"mrn_date is invalid"}, resp.Errors)
}

func (s *CallbackSuite) TestValidateDelegatesToValidator() {
	record := domain.ExceptionRecord{ID: "rec-1"}
	transformed := transformedResponse()
	validated := domain.CaseResponse{Record: transformed.Record, Warnings: []string{"person1_nino is empty"}}
	s.mockTransformer.EXPECT().Transform(gomock.Any(), record, true).Return(transformed, nil)
	s.mockValidator.EXPECT().
		ValidateExceptionRecord(gomock.Any(), transformed, record, true).
		Return(validated, nil)

	resp, err := s.service.Validate(s.ctx, record)

	s.Require().NoError(err)
	s.Equal(validated, resp)
}

func (s *CallbackSuite) TestValidateTransformFailure() {
	record := domain.ExceptionRecord{ID: "rec-1"}
	s.mockTransformer.EXPECT().
		Transform(gomock.Any(), record, true).
		Return(domain.CaseResponse{}, errors.New("ocr service down"))

	_, err := s.service.Validate(s.ctx, record)

	s.Error(err)
}

func (s *CallbackSuite) TestTransformErrorsRejectRecord() {
	record := domain.ExceptionRecord{ID: "rec-1"}
	s.mockTransformer.EXPECT().
		Transform(gomock.Any(), record, false).
		Return(domain.CaseResponse{Errors: []string{"mrn_date is in the future"}}, nil)

	_, err := s.service.Transform(s.ctx, record, false, s.token)

	var invalid *InvalidExceptionRecordError
	s.Require().ErrorAs(err, &invalid)
	s.Equal([]string{"mrn_date is in the future"}, invalid.Messages)
}

func (s *CallbackSuite) TestTransformAutomatedWarningsEscalate() {
	record := domain.ExceptionRecord{ID: "rec-1", IsAutomatedProcess: true}
	s.mockTransformer.EXPECT().
		Transform(gomock.Any(), record, false).
		Return(domain.CaseResponse{Warnings: []string{"office is ambiguous"}}, nil)

	_, err := s.service.Transform(s.ctx, record, false, s.token)

	var invalid *InvalidExceptionRecordError
	s.Require().ErrorAs(err, &invalid)
	s.Equal([]string{"office is ambiguous"}, invalid.Messages)
}

func (s *CallbackSuite) TestTransformValidationErrorsRejectRecord() {
	record := domain.ExceptionRecord{ID: "rec-1"}
	transformed := transformedResponse()
	s.mockTransformer.EXPECT().Transform(gomock.Any(), record, false).Return(transformed, nil)
	s.mockValidator.EXPECT().
		ValidateExceptionRecord(gomock.Any(), transformed, record, false).
		Return(domain.CaseResponse{Record: transformed.Record, Errors: []string{"person1_nino is invalid"}}, nil)

	_, err := s.service.Transform(s.ctx, record, false, s.token)

	var invalid *InvalidExceptionRecordError
	s.Require().ErrorAs(err, &invalid)
	s.Equal([]string{"person1_nino is invalid"}, invalid.Messages)
}

func (s *CallbackSuite) TestTransformAutomatedValidationWarningsEscalate() {
	record := domain.ExceptionRecord{ID: "rec-1", IsAutomatedProcess: true}
	transformed := transformedResponse()
	s.mockTransformer.EXPECT().Transform(gomock.Any(), record, false).Return(transformed, nil)
	s.mockValidator.EXPECT().
		ValidateExceptionRecord(gomock.Any(), transformed, record, false).
		Return(domain.CaseResponse{Record: transformed.Record, Warnings: []string{"person1_dob is empty"}}, nil)

	_, err := s.service.Transform(s.ctx, record, false, s.token)

	var invalid *InvalidExceptionRecordError
	s.Require().ErrorAs(err, &invalid)
}

func (s *CallbackSuite) TestTransformWarningsGateCreation() {
	record := domain.ExceptionRecord{ID: "rec-1"}
	transformed := transformedResponse()
	validated := domain.CaseResponse{Record: transformed.Record, Warnings: []string{"person1_dob is empty"}}
	s.mockTransformer.EXPECT().Transform(gomock.Any(), record, false).Return(transformed, nil)
	s.mockValidator.EXPECT().
		ValidateExceptionRecord(gomock.Any(), transformed, record, false).
		Return(validated, nil)

	result, err := s.service.Transform(s.ctx, record, false, s.token)

	s.Require().NoError(err)
	s.Empty(result.State)
	s.Empty(result.CaseID)
	s.Equal([]string{"person1_dob is empty"}, result.Warnings)
	s.Equal("incompleteApplicationReceived", result.CaseCreationDetails.EventID)
}

func (s *CallbackSuite) TestTransformCreatesCase() {
	record := domain.ExceptionRecord{ID: "rec-1"}
	transformed := transformedResponse()
	validated := domain.CaseResponse{Record: transformed.Record}
	s.mockTransformer.EXPECT().Transform(gomock.Any(), record, false).Return(transformed, nil)
	s.mockValidator.EXPECT().
		ValidateExceptionRecord(gomock.Any(), transformed, record, false).
		Return(validated, nil)
	s.mockStore.EXPECT().
		FindCaseBy(gomock.Any(), gomock.Len(3), s.token).
		Return(nil, nil)
	s.mockStore.EXPECT().
		FindCaseBy(gomock.Any(), gomock.Len(1), s.token).
		Return(nil, nil)
	s.mockStore.EXPECT().
		CreateCase(gomock.Any(), transformed.Record, s.token, "validAppealCreated").
		Return(int64(123), nil)
	s.mockStore.EXPECT().
		UpdateCase(gomock.Any(), transformed.Record, s.token,
			domain.EventSendToDwp, gomock.Any(), gomock.Any(), int64(123)).
		Return(nil)

	result, err := s.service.Transform(s.ctx, record, false, s.token)

	s.Require().NoError(err)
	s.Equal(casecreation.StateCaseCreated, result.State)
	s.Equal("123", result.CaseID)
	s.Equal(CaseTypeID, result.CaseCreationDetails.CaseTypeID)
	s.Equal("validAppealCreated", result.CaseCreationDetails.EventID)
}

func (s *CallbackSuite) TestValidateAndUpdateNilRecord() {
	_, err := s.service.ValidateAndUpdate(s.ctx, LiveCallback{Event: "appealCreated", CaseID: "1"}, s.token)

	s.Error(err)
}

func (s *CallbackSuite) TestValidateAndUpdateResetsInterlocReview() {
	rec := &domain.CaseRecord{
		InterlocReviewState: "reviewByJudge",
		Appeal: &domain.Appeal{
			Appellant: &domain.Appellant{Identity: &domain.Identity{Nino: "AB123456C"}},
		},
	}
	s.mockValidator.EXPECT().
		ValidateCaseRecord(gomock.Any(), rec, false).
		Return(domain.CaseResponse{Record: rec}, nil)
	s.mockStore.EXPECT().
		FindCaseBy(gomock.Any(), gomock.Len(1), s.token).
		Return(nil, nil)

	result, err := s.service.ValidateAndUpdate(s.ctx, LiveCallback{Event: "appealCreated", CaseID: "1", Record: rec}, s.token)

	s.Require().NoError(err)
	s.Equal(domain.InterlocReviewNone, result.Record.InterlocReviewState)
	s.Equal(domain.StateReadyToList, result.Record.CreatedInGapsFrom)
}

func (s *CallbackSuite) TestValidateAndUpdateMergesWarningsFirst() {
	rec := &domain.CaseRecord{Appeal: &domain.Appeal{}}
	s.mockValidator.EXPECT().
		ValidateCaseRecord(gomock.Any(), rec, false).
		Return(domain.CaseResponse{
			Record:   rec,
			Errors:   []string{"person1_nino is invalid"},
			Warnings: []string{"person1_dob is empty"},
		}, nil)

	result, err := s.service.ValidateAndUpdate(s.ctx, LiveCallback{Event: "appealCreated", CaseID: "1", Record: rec}, s.token)

	s.Require().NoError(err)
	s.Equal([]string{"person1_dob is empty", "person1_nino is invalid"}, result.Errors)
	s.Empty(result.Warnings)
}

func (s *CallbackSuite) TestValidateAndUpdateIgnoresMrnForAppealToProceed() {
	rec := &domain.CaseRecord{
		DirectionType: domain.DirectionAppealToProceed,
		Appeal:        &domain.Appeal{},
	}
	s.mockValidator.EXPECT().
		ValidateCaseRecord(gomock.Any(), rec, true).
		Return(domain.CaseResponse{Record: rec}, nil)
	s.mockStore.EXPECT().
		FindCaseBy(gomock.Any(), gomock.Any(), s.token).
		Return(nil, nil).
		AnyTimes()

	_, err := s.service.ValidateAndUpdate(s.ctx, LiveCallback{Event: domain.EventDirectionIssued, CaseID: "1", Record: rec}, s.token)

	s.NoError(err)
}

func (s *CallbackSuite) TestValidateAndUpdateDirectionIssuedWithoutProceedKeepsMrnChecks() {
	rec := &domain.CaseRecord{Appeal: &domain.Appeal{}}
	s.mockValidator.EXPECT().
		ValidateCaseRecord(gomock.Any(), rec, false).
		Return(domain.CaseResponse{Record: rec, Errors: []string{"mrn_date is empty"}}, nil)

	result, err := s.service.ValidateAndUpdate(s.ctx, LiveCallback{Event: domain.EventDirectionIssued, CaseID: "1", Record: rec}, s.token)

	s.Require().NoError(err)
	s.Equal([]string{"mrn_date is empty"}, result.Errors)
}
