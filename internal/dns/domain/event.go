package domain

import "time"

// QueryEvent records one served datagram: who asked, what they asked, and how
// the fixture answered. The query log keeps these as the server-side ground
// truth for "was the fixture actually exercised".
type QueryEvent struct {
	Time    time.Time
	Client  string
	Name    string
	Type    RRType
	RCode   RCode
	Answers int
}
