package domain

// CaseRecord is the typed view of every case field this service reads or
// writes. The dynamically-keyed form the store expects only exists at the
// serialization boundary; the JSON tags carry the store's field names.
type CaseRecord struct {
	CaseReference          string         `json:"caseReference,omitempty"`
	Appeal                 *Appeal        `json:"appeal,omitempty"`
	Documents              []Document     `json:"sscsDocument,omitempty"`
	Subscriptions          *Subscriptions `json:"subscriptions,omitempty"`
	FormType               string         `json:"formType,omitempty"`
	InterlocReviewState    string         `json:"interlocReviewState,omitempty"`
	InterlocReferralReason string         `json:"interlocReferralReason,omitempty"`
	DirectionType          string         `json:"directionType,omitempty"`
	BenefitCode            string         `json:"benefitCode,omitempty"`
	IssueCode              string         `json:"issueCode,omitempty"`
	CaseCode               string         `json:"caseCode,omitempty"`
	DwpRegionalCentre      string         `json:"dwpRegionalCentre,omitempty"`
	CreatedInGapsFrom      string         `json:"createdInGapsFrom,omitempty"`
	EvidencePresent        string         `json:"evidencePresent,omitempty"`
	ProcessingVenue        string         `json:"processingVenue,omitempty"`
	AssociatedCases        []CaseLink     `json:"associatedCase,omitempty"`
	LinkedCasesBoolean     string         `json:"linkedCasesBoolean,omitempty"`
}

// Document is a scanned document attached to the case.
type Document struct {
	FileName    string `json:"fileName,omitempty"`
	DocumentURL string `json:"documentUrl,omitempty"`
	Type        string `json:"documentType,omitempty"`
}

type Subscriptions struct {
	Appellant *Subscription `json:"appellantSubscription,omitempty"`
	Appointee *Subscription `json:"appointeeSubscription,omitempty"`
}

type Subscription struct {
	Email          string `json:"email,omitempty"`
	Mobile         string `json:"mobile,omitempty"`
	SubscribeEmail string `json:"subscribeEmail,omitempty"`
	SubscribeSms   string `json:"subscribeSms,omitempty"`
}

// CaseLink references another case sharing the same NINO. Links behave as a
// set: order is irrelevant and no two links share a case reference.
type CaseLink struct {
	CaseReference string `json:"caseReference"`
}

// CaseDetails is a case as returned by the store's search API.
type CaseDetails struct {
	ID       int64          `json:"id"`
	CaseData map[string]any `json:"case_data,omitempty"`
}

// ExceptionRecord is a scanned paper submission awaiting transformation
// into a structured case.
type ExceptionRecord struct {
	ID                 string
	ExceptionRecordID  string
	IsAutomatedProcess bool
	FormType           string
	CaseReference      string
	Fields             map[string]string
}

// EffectiveID prefers the newer exception-record identifier over the legacy
// id field; older callers only populate the latter.
func (r ExceptionRecord) EffectiveID() string {
	if r.ExceptionRecordID != "" {
		return r.ExceptionRecordID
	}
	return r.ID
}
