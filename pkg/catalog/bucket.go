package catalog

import "math"

// Bucket is a named half-open range [Min, Max) over a continuous attribute.
type Bucket struct {
	Name  string
	Label string
	Min   float64
	Max   float64
}

// Contains reports whether v falls inside the bucket.
func (b Bucket) Contains(v float64) bool {
	return v >= b.Min && v < b.Max
}

// ScreenBuckets maps the screen facet values to display size ranges (inches).
var ScreenBuckets = []Bucket{
	{Name: "13", Label: `Under 14"`, Min: math.Inf(-1), Max: 14},
	{Name: "14", Label: `14"`, Min: 14, Max: 15},
	{Name: "15", Label: `15"`, Min: 15, Max: 16},
	{Name: "16", Label: `16"`, Min: 16, Max: 17},
	{Name: "17", Label: `17" and up`, Min: 17, Max: math.Inf(1)},
}

// WeightCategory is the single-select weight filter.
type WeightCategory string

const (
	WeightUltraportable WeightCategory = "ultraportable"
	WeightStandard      WeightCategory = "standard"
	WeightHeavy         WeightCategory = "heavy"
)

// WeightCategories maps each weight category to its weight range (kg).
var WeightCategories = []Bucket{
	{Name: string(WeightUltraportable), Label: "Ultraportable (under 1.5 kg)", Min: math.Inf(-1), Max: 1.5},
	{Name: string(WeightStandard), Label: "Standard (1.5 - 2.5 kg)", Min: 1.5, Max: 2.5},
	{Name: string(WeightHeavy), Label: "Heavy (2.5 kg and up)", Min: 2.5, Max: math.Inf(1)},
}

func findBucket(table []Bucket, name string) (Bucket, bool) {
	for _, b := range table {
		if b.Name == name {
			return b, true
		}
	}
	return Bucket{}, false
}

// ScreenBucketFor returns the screen bucket a display size belongs to.
func ScreenBucketFor(size float64) (Bucket, bool) {
	for _, b := range ScreenBuckets {
		if b.Contains(size) {
			return b, true
		}
	}
	return Bucket{}, false
}

// WeightCategoryFor returns the weight category of a weight in kg.
func WeightCategoryFor(weight float64) (Bucket, bool) {
	for _, b := range WeightCategories {
		if b.Contains(weight) {
			return b, true
		}
	}
	return Bucket{}, false
}
