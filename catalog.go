package main

const (
	CategoryCooking = "cooking"
	CategoryRune    = "rune"
)

// PriceRange is the historical low/high for one catalog entry.
type PriceRange struct {
	Low  int
	High int
}

// cookingCatalog maps dish name to its historical price range. These are
// fixed business constants, not configuration.
var cookingCatalog = map[string]PriceRange{
	"주먹밥":  {Low: 16, High: 28},
	"김밥":   {Low: 21, High: 35},
	"달걀찜":  {Low: 27, High: 44},
	"호떡":   {Low: 33, High: 49},
	"떡볶이":  {Low: 37, High: 52},
	"어묵탕":  {Low: 45, High: 63},
	"우동":   {Low: 49, High: 66},
	"김치찌개": {Low: 54, High: 72},
	"된장찌개": {Low: 58, High: 77},
	"비빔밥":  {Low: 61, High: 83},
	"만두국":  {Low: 66, High: 88},
	"라면":   {Low: 71, High: 85},
	"불고기":  {Low: 76, High: 97},
	"잡채":   {Low: 82, High: 104},
	"갈비찜":  {Low: 88, High: 112},
	"삼계탕":  {Low: 95, High: 121},
	"전복죽":  {Low: 103, High: 126},
	"궁중정식": {Low: 109, High: 131},
	"신선로":  {Low: 118, High: 140},
	"용봉탕":  {Low: 127, High: 149},
}

// runeCatalog maps rune name to its historical price range.
var runeCatalog = map[string]PriceRange{
	"힘":  {Low: 206, High: 263},
	"민첩": {Low: 238, High: 289},
	"치유": {Low: 292, High: 341},
	"지혜": {Low: 412, High: 478},
	"수호": {Low: 655, High: 742},
	"파괴": {Low: 1204, High: 1378},
	"재생": {Low: 2310, High: 2557},
}

func catalogFor(category string) map[string]PriceRange {
	if category == CategoryRune {
		return runeCatalog
	}
	return cookingCatalog
}

// cookingTier buckets a dish by its historical low. Returns 0 when the low
// falls outside every bucket.
func cookingTier(low int) int {
	switch {
	case low >= 103:
		return 4
	case low >= 71:
		return 3
	case low >= 54:
		return 2
	case low >= 16:
		return 1
	default:
		return 0
	}
}
