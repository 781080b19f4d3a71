package feedback

import "github.com/angelmondragon/restroboost-backend/pkg/enums"

// DateLayout renders the display date stored on each entry (month/day/year).
const DateLayout = "1/2/2006"

// Entry is one piece of customer feedback. Sentiment is chosen by the author
// and is not derived from Rating.
type Entry struct {
	ID        string          `json:"id"`
	Customer  string          `json:"customer"`
	Rating    int             `json:"rating"`
	Comment   string          `json:"comment"`
	Date      string          `json:"date"`
	Dish      string          `json:"dish"`
	Sentiment enums.Sentiment `json:"sentiment"`
	Helpful   int             `json:"helpful"`
	Responded bool            `json:"responded"`
}

// CreateEntryInput holds a new entry. An empty Sentiment defaults to
// positive.
type CreateEntryInput struct {
	Customer  string
	Rating    int
	Comment   string
	Dish      string
	Sentiment enums.Sentiment
}

type UpdateEntryInput struct {
	Customer  *string
	Rating    *int
	Comment   *string
	Dish      *string
	Sentiment *enums.Sentiment
	Helpful   *int
	Responded *bool
}

type ListInput struct {
	Sentiment *enums.Sentiment
	Search    string
}

func (in UpdateEntryInput) apply(e *Entry) {
	if in.Customer != nil {
		e.Customer = *in.Customer
	}
	if in.Rating != nil {
		e.Rating = *in.Rating
	}
	if in.Comment != nil {
		e.Comment = *in.Comment
	}
	if in.Dish != nil {
		e.Dish = *in.Dish
	}
	if in.Sentiment != nil {
		e.Sentiment = *in.Sentiment
	}
	if in.Helpful != nil {
		e.Helpful = *in.Helpful
	}
	if in.Responded != nil {
		e.Responded = *in.Responded
	}
}
