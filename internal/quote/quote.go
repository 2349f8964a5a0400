package quote

// Record is one quote snapshot with six display-formatted fields.
// Values are carried exactly as the upstream source formats them;
// no numeric parsing or validation happens anywhere in the pipeline.
type Record struct {
	Symbol        string
	Name          string
	Price         string
	ChangePrice   string
	ChangePercent string
	MarketCap     string
}

// Fields returns the record's values in fixed column order, matching
// the output header symbol,name,price,change_price,change_percent,market_price.
func (r Record) Fields() [6]string {
	return [6]string{r.Symbol, r.Name, r.Price, r.ChangePrice, r.ChangePercent, r.MarketCap}
}
