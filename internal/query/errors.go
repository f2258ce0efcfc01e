package query

// Reason identifies why a query was rejected.
type Reason string

const (
	ReasonTooShort        Reason = "too_short"
	ReasonTooFewLetters   Reason = "too_few_letters"
	ReasonRepeatedChars   Reason = "repeated_characters"
	ReasonMissingLocation Reason = "missing_location"
)

var reasonMessages = map[Reason]string{
	ReasonTooShort:        "query must be at least 3 characters long",
	ReasonTooFewLetters:   "query must be mostly letters",
	ReasonRepeatedChars:   "query contains repeated characters",
	ReasonMissingLocation: "safety question must name a location",
}

// ValidationError rejects a query. It is recoverable: the user can rephrase.
type ValidationError struct {
	Reason Reason
}

func (e *ValidationError) Error() string {
	if msg, ok := reasonMessages[e.Reason]; ok {
		return msg
	}
	return "invalid query"
}
