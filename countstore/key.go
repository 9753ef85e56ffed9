package countstore

import "encoding/binary"

// Key layout. Every counter lives under a single tag byte so the three key
// spaces can never overlap:
//
//	0x01 | uvarint(len(feature)) | feature | category
//	0x02 | category
//	0x03
//
// The feature is length-prefixed and the category is always the key tail, so
// features and categories may contain arbitrary bytes without producing
// colliding keys.
const (
	kindFeatureCategory byte = 0x01
	kindCategory        byte = 0x02
	kindTotal           byte = 0x03
)

var totalKey = []byte{kindTotal}

// featurePrefix returns the common prefix of all feature/category counter
// keys for the given feature. Scanning it visits exactly the categories the
// feature has co-occurred with.
func featurePrefix(feature string) []byte {
	buf := make([]byte, 0, 1+binary.MaxVarintLen64+len(feature))
	buf = append(buf, kindFeatureCategory)
	buf = binary.AppendUvarint(buf, uint64(len(feature)))
	return append(buf, feature...)
}

func featureCategoryKey(feature, category string) []byte {
	buf := make([]byte, 0, 1+binary.MaxVarintLen64+len(feature)+len(category))
	buf = append(buf, kindFeatureCategory)
	buf = binary.AppendUvarint(buf, uint64(len(feature)))
	buf = append(buf, feature...)
	return append(buf, category...)
}

func categoryKey(category string) []byte {
	buf := make([]byte, 0, 1+len(category))
	buf = append(buf, kindCategory)
	return append(buf, category...)
}

// categoryFromKey recovers the label from a category counter key.
func categoryFromKey(key []byte) string {
	return string(key[1:])
}
