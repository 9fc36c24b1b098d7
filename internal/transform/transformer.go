// Package transform maps raw scanned form fields onto a structured case
// record and stamps the derived routing fields. Field coverage follows the
// paper appeal forms; anything unrecognized is simply left unmapped for
// the validator to complain about.
package transform

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"sscs-bulk-scan/internal/casecode"
	"sscs-bulk-scan/internal/casedata"
	"sscs-bulk-scan/internal/domain"
)

// Transformer builds case records from exception records.
type Transformer struct {
	evaluator *casedata.Evaluator
	logger    *slog.Logger
}

func New(evaluator *casedata.Evaluator, logger *slog.Logger) *Transformer {
	return &Transformer{evaluator: evaluator, logger: logger}
}

// Transform maps the OCR fields onto a case record. Problems are reported
// in-band: a benefit type with no code mapping is a transformation error,
// not a panic upward.
func (t *Transformer) Transform(ctx context.Context, record domain.ExceptionRecord, _ bool) (domain.CaseResponse, error) {
	fields := ocrFields(record.Fields)

	rec := &domain.CaseRecord{
		CaseReference: record.CaseReference,
		FormType:      record.FormType,
		Appeal:        buildAppeal(fields),
		Subscriptions: buildSubscriptions(fields),
	}

	response := domain.CaseResponse{Record: rec}

	if err := t.evaluator.ApplyDerivedFields(ctx, rec); err != nil {
		var mappingErr *casecode.MappingError
		if errors.As(err, &mappingErr) {
			response.Errors = append(response.Errors, mappingErr.Error())
			return response, nil
		}
		return domain.CaseResponse{}, err
	}

	return response, nil
}

func buildAppeal(fields ocr) *domain.Appeal {
	appeal := &domain.Appeal{}

	appellant := &domain.Appellant{}
	if name := buildName(fields, "person1_"); name != nil {
		appellant.Name = name
	}
	if nino := fields.get("person1_nino"); nino != "" {
		appellant.Identity = &domain.Identity{Nino: nino, Dob: fields.get("person1_dob")}
	}
	if address := buildAddress(fields, "person1_"); address != nil {
		appellant.Address = address
	}
	if name := buildName(fields, "person2_"); name != nil {
		appellant.Appointee = &domain.Appointee{
			Name:    name,
			Address: buildAddress(fields, "person2_"),
		}
	}
	if *appellant != (domain.Appellant{}) {
		appeal.Appellant = appellant
	}

	if code := fields.get("benefit_type_description"); code != "" {
		appeal.BenefitType = &domain.BenefitType{Code: code}
	}

	mrnDate := fields.get("mrn_date")
	office := fields.get("office")
	if mrnDate != "" || office != "" {
		appeal.MrnDetails = &domain.MrnDetails{
			MrnDate:          mrnDate,
			DwpIssuingOffice: office,
			MrnLateReason:    fields.get("appeal_late_reason"),
		}
	}

	if grounds := fields.get("appeal_grounds"); grounds != "" {
		appeal.AppealReasons = &domain.AppealReasons{
			Reasons: []domain.AppealReason{{Description: grounds}},
		}
	}
	if other := fields.get("appeal_grounds_other"); other != "" {
		if appeal.AppealReasons == nil {
			appeal.AppealReasons = &domain.AppealReasons{}
		}
		appeal.AppealReasons.OtherReasons = other
	}

	if fields.get("is_hearing_type_oral") == "true" {
		appeal.HearingType = "oral"
	} else if fields.get("is_hearing_type_paper") == "true" {
		appeal.HearingType = "paper"
	}

	return appeal
}

func buildName(fields ocr, prefix string) *domain.Name {
	name := &domain.Name{
		Title:     fields.get(prefix + "title"),
		FirstName: fields.get(prefix + "first_name"),
		LastName:  fields.get(prefix + "last_name"),
	}
	if *name == (domain.Name{}) {
		return nil
	}
	return name
}

func buildAddress(fields ocr, prefix string) *domain.Address {
	address := &domain.Address{
		Line1:    fields.get(prefix + "address_line1"),
		Line2:    fields.get(prefix + "address_line2"),
		Town:     fields.get(prefix + "address_line3"),
		County:   fields.get(prefix + "address_line4"),
		Postcode: fields.get(prefix + "postcode"),
	}
	if *address == (domain.Address{}) {
		return nil
	}
	return address
}

func buildSubscriptions(fields ocr) *domain.Subscriptions {
	mobile := fields.get("person1_mobile")
	email := fields.get("person1_email")
	if mobile == "" && email == "" {
		return nil
	}

	sub := &domain.Subscription{Email: email, Mobile: mobile}
	if email != "" {
		sub.SubscribeEmail = "Yes"
	}
	if mobile != "" {
		sub.SubscribeSms = "Yes"
	}
	return &domain.Subscriptions{Appellant: sub}
}

type ocr map[string]string

func ocrFields(raw map[string]string) ocr {
	clean := make(ocr, len(raw))
	for k, v := range raw {
		clean[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	return clean
}

func (f ocr) get(key string) string {
	return f[key]
}
