package hts

import (
	"fmt"

	"moogship/internal/domain"
)

// chapterEstimate is a typical general rate for a whole tariff chapter,
// used only when no exact or document-sourced rate exists.
type chapterEstimate struct {
	desc string
	rate string
	pct  float64
}

// chapterEstimates covers the chapters MoogShip shipments most commonly
// fall into. Deliberately not a universal catch-all: a chapter missing here
// means the overall resolution reports "not found".
var chapterEstimates = map[int]chapterEstimate{
	4:  {"Dairy produce; birds' eggs; natural honey", "10%", 0.10},
	29: {"Organic chemicals", "6.5%", 0.065},
	39: {"Plastics and articles thereof", "4.6%", 0.046},
	42: {"Articles of leather; handbags and similar containers", "8%", 0.08},
	52: {"Cotton, including yarns and woven fabrics", "8.4%", 0.084},
	61: {"Apparel and clothing accessories, knitted or crocheted", "16.5%", 0.165},
	62: {"Apparel and clothing accessories, not knitted or crocheted", "16%", 0.16},
	64: {"Footwear, gaiters and the like", "12.5%", 0.125},
	71: {"Precious stones and metals; jewelry", "5.5%", 0.055},
	73: {"Articles of iron or steel", "2.9%", 0.029},
	84: {"Machinery and mechanical appliances", "2.5%", 0.025},
	85: {"Electrical machinery and equipment", "Free", 0},
	87: {"Vehicles and parts thereof", "2.5%", 0.025},
	90: {"Optical, photographic and measuring instruments", "2.2%", 0.022},
	94: {"Furniture; bedding; lamps and lighting fittings", "2.4%", 0.024},
	95: {"Toys, games and sports equipment", "Free", 0},
}

// EstimateByChapter returns a low-confidence rate estimate keyed only by the
// code's 2-digit chapter, or nil when the chapter has no estimate. The
// source tag is deliberately "not_found": the caller is being handed an
// estimate, not sourced data.
func EstimateByChapter(code string) *domain.HTSEntry {
	ch := Chapter(code)
	est, ok := chapterEstimates[ch]
	if !ok {
		return nil
	}
	return &domain.HTSEntry{
		HSCode:      Normalize(code),
		Description: fmt.Sprintf("%s (chapter %d estimate)", est.desc, ch),
		GeneralRate: est.rate,
		Percentage:  est.pct,
		Source:      domain.RateSourceNotFound,
		Confidence:  domain.ConfidenceLow,
		Chapter:     ch,
	}
}
