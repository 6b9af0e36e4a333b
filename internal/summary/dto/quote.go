package dto

// Quote is a normalized stock price snapshot. Values are kept exactly as the provider sent them.
type Quote struct {
	Symbol        string `json:"symbol"`
	Price         string `json:"price"`
	Change        string `json:"change"`
	PercentChange string `json:"percent_change"`
}

// AlphaVantageGlobalQuoteResponse is the GLOBAL_QUOTE response body.
type AlphaVantageGlobalQuoteResponse struct {
	GlobalQuote  *AlphaVantageGlobalQuote `json:"Global Quote"`
	Note         string                   `json:"Note,omitempty"`
	Information  string                   `json:"Information,omitempty"`
	ErrorMessage string                   `json:"Error Message,omitempty"`
}

// AlphaVantageGlobalQuote is the "Global Quote" object. The fields the service reads are
// pointers so that a missing key can be told apart from an empty value.
type AlphaVantageGlobalQuote struct {
	Symbol           *string `json:"01. symbol"`
	Open             string  `json:"02. open"`
	High             string  `json:"03. high"`
	Low              string  `json:"04. low"`
	Price            *string `json:"05. price"`
	Volume           string  `json:"06. volume"`
	LatestTradingDay string  `json:"07. latest trading day"`
	PreviousClose    string  `json:"08. previous close"`
	Change           *string `json:"09. change"`
	ChangePercent    *string `json:"10. change percent"`
}

// Empty reports whether the provider returned the object without any fields.
func (q *AlphaVantageGlobalQuote) Empty() bool {
	return q == nil || *q == AlphaVantageGlobalQuote{}
}

// MissingFields lists the required keys absent from the object.
func (q *AlphaVantageGlobalQuote) MissingFields() []string {
	var missing []string
	if q.Symbol == nil {
		missing = append(missing, "01. symbol")
	}
	if q.Price == nil {
		missing = append(missing, "05. price")
	}
	if q.Change == nil {
		missing = append(missing, "09. change")
	}
	if q.ChangePercent == nil {
		missing = append(missing, "10. change percent")
	}
	return missing
}
