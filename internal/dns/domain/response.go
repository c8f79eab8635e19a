package domain

import "fmt"

// DNSResponse represents a complete DNS response message. The original
// Question is carried alongside the answers because every reply echoes the
// question section on the wire, including replies with no answers at all
// (NXDOMAIN and empty NOERROR).
type DNSResponse struct {
	ID       uint16
	RCode    RCode
	Question Question
	Answers  []ResourceRecord
}

// NewDNSResponse constructs a NOERROR DNSResponse for the given question and
// validates its fields. The message ID is taken from the question.
func NewDNSResponse(q Question, answers []ResourceRecord) (DNSResponse, error) {
	resp := DNSResponse{
		ID:       q.ID,
		RCode:    RCodeNoError,
		Question: q,
		Answers:  answers,
	}
	if err := resp.Validate(); err != nil {
		return DNSResponse{}, err
	}
	return resp, nil
}

// NewErrorResponse creates an answerless DNSResponse carrying the specified
// response code, e.g. NXDOMAIN for names outside the fixture zones.
func NewErrorResponse(q Question, rcode RCode) DNSResponse {
	return DNSResponse{
		ID:       q.ID,
		RCode:    rcode,
		Question: q,
		Answers:  nil,
	}
}

// Validate checks whether the DNSResponse fields are structurally valid.
func (resp DNSResponse) Validate() error {
	if !resp.RCode.IsValid() {
		return fmt.Errorf("invalid RCode: %d", resp.RCode)
	}
	if err := resp.Question.Validate(); err != nil {
		return fmt.Errorf("invalid question: %w", err)
	}
	for i, rr := range resp.Answers {
		if err := rr.Validate(); err != nil {
			return fmt.Errorf("invalid answer record at index %d: %w", i, err)
		}
	}
	return nil
}

// IsError returns true if the response indicates an error condition.
func (resp DNSResponse) IsError() bool {
	return resp.RCode != RCodeNoError
}

// HasAnswers returns true if the response contains answer records.
func (resp DNSResponse) HasAnswers() bool {
	return len(resp.Answers) > 0
}

// AnswerCount returns the number of answer records in the response.
func (resp DNSResponse) AnswerCount() int {
	return len(resp.Answers)
}
