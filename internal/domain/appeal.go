package domain

import "strings"

// Appeal is the structured appeal payload produced by transformation.
// It is immutable once validated and owned by the case record.
type Appeal struct {
	Appellant     *Appellant     `json:"appellant,omitempty"`
	BenefitType   *BenefitType   `json:"benefitType,omitempty"`
	MrnDetails    *MrnDetails    `json:"mrnDetails,omitempty"`
	AppealReasons *AppealReasons `json:"appealReasons,omitempty"`
	HearingType   string         `json:"hearingType,omitempty"`
}

// Appellant is the person bringing the appeal, optionally represented by an
// appointee.
type Appellant struct {
	Name      *Name      `json:"name,omitempty"`
	Identity  *Identity  `json:"identity,omitempty"`
	Address   *Address   `json:"address,omitempty"`
	Appointee *Appointee `json:"appointee,omitempty"`
}

type Appointee struct {
	Name    *Name    `json:"name,omitempty"`
	Address *Address `json:"address,omitempty"`
}

type Name struct {
	Title     string `json:"title,omitempty"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
}

// Identity carries the national insurance number, the primary cross-case
// identity key used for dedup and linking.
type Identity struct {
	Nino string `json:"nino,omitempty"`
	Dob  string `json:"dob,omitempty"`
}

type Address struct {
	Line1    string `json:"line1,omitempty"`
	Line2    string `json:"line2,omitempty"`
	Town     string `json:"town,omitempty"`
	County   string `json:"county,omitempty"`
	Postcode string `json:"postcode,omitempty"`
}

type BenefitType struct {
	Code        string `json:"code,omitempty"`
	Description string `json:"description,omitempty"`
}

// MrnDetails holds the mandatory reconsideration notice, the anchor for the
// 13-month non-compliance rule. MrnDate is an ISO calendar date.
type MrnDetails struct {
	MrnDate          string `json:"mrnDate,omitempty"`
	DwpIssuingOffice string `json:"dwpIssuingOffice,omitempty"`
	MrnLateReason    string `json:"mrnLateReason,omitempty"`
}

type AppealReasons struct {
	Reasons      []AppealReason `json:"reasons,omitempty"`
	OtherReasons string         `json:"otherReasons,omitempty"`
}

type AppealReason struct {
	Reason      string `json:"reason,omitempty"`
	Description string `json:"description,omitempty"`
}

// Nino returns the appellant's national insurance number, or "" when any
// link in the chain is missing.
func (a *Appeal) Nino() string {
	if a == nil || a.Appellant == nil || a.Appellant.Identity == nil {
		return ""
	}
	return a.Appellant.Identity.Nino
}

// BenefitCode returns the benefit type code, or "" when missing.
func (a *Appeal) BenefitCode() string {
	if a == nil || a.BenefitType == nil {
		return ""
	}
	return a.BenefitType.Code
}

// MrnDate returns the raw MRN date string, or "" when missing.
func (a *Appeal) MrnDate() string {
	if a == nil || a.MrnDetails == nil {
		return ""
	}
	return a.MrnDetails.MrnDate
}

// HasGrounds reports whether the appeal carries non-blank appeal-reason
// text, either free text or the first structured reason.
func (a *Appeal) HasGrounds() bool {
	if a == nil || a.AppealReasons == nil {
		return false
	}
	if strings.TrimSpace(a.AppealReasons.OtherReasons) != "" {
		return true
	}
	reasons := a.AppealReasons.Reasons
	if len(reasons) == 0 {
		return false
	}
	first := reasons[0]
	return strings.TrimSpace(first.Reason) != "" || strings.TrimSpace(first.Description) != ""
}
