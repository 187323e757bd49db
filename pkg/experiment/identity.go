// Package experiment recovers structured experiment identity from MQSim
// result file names.
//
// Result files are named after the workload that produced them, for example:
//
//	wl_cache128MB_4kb_randread_scenario_1.xml
//	wl_ch4_chip2_4kb_randread_scenario_1.xml
//	wl_ioqd32_4kb_randwrite_scenario_1.xml
//	wl_tpcc_cache1GB_scenario_1.xml
//	wl_tpcc_ch4_chip2_scenario_1.xml
//	wl_tpcc_ioqd8_scenario_1.xml
//
// Exactly one experiment axis (cache size, channel/chip counts or I/O queue
// depth) is populated per identity, selected by the category (or by the tpcc
// variant for tpcc workloads). Fields outside the selected axis stay nil.
package experiment

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// Category describes which experiment axis a result file belongs to.
type Category string

// Experiment categories encoded in result file names.
const (
	CategoryCache   Category = "cache"
	CategoryChChip  Category = "ch_chip"
	CategoryIOQD    Category = "ioqd"
	CategoryTPCC    Category = "tpcc"
	CategoryUnknown Category = "unknown"
)

// Variant selects the experiment axis of a tpcc workload.
type Variant string

// Axis variants of tpcc experiments.
const (
	VariantCache  Variant = "cache"
	VariantChChip Variant = "ch_chip"
	VariantIOQD   Variant = "ioqd"
)

// Identity is the experiment metadata recovered from a result file name.
// Optional fields are nil when the name does not carry them; they are never
// populated with zero values.
type Identity struct {
	ExpName         string
	Category        Category
	CacheSize       *string
	Channels        *int64
	ChipsPerChannel *int64
	IOQueueDepth    *int64
	BlockSize       *string
	AccessPattern   *string
	TPCCVariant     *Variant
}

var (
	channelsPattern = regexp.MustCompile(`^ch(\d+)`)
	chipsPattern    = regexp.MustCompile(`^chip(\d+)`)
	queuedPattern   = regexp.MustCompile(`^ioqd(\d+)`)
)

// ParseName decodes a result file name into an Identity. It never fails: a
// name which does not follow the workload grammar yields CategoryUnknown with
// all axis fields nil. Integer parse failures on a matched prefix leave the
// corresponding field nil.
func ParseName(filename string) Identity {
	base := filepath.Base(filename)
	if strings.HasSuffix(strings.ToLower(base), ".xml") {
		base = base[:len(base)-len(".xml")]
	}

	identity := Identity{
		ExpName:  base,
		Category: CategoryUnknown,
	}

	parts := strings.Split(base, "_")
	if len(parts) < 2 || parts[0] != "wl" {
		return identity
	}

	kind := parts[1]

	switch {
	// Cache experiments: wl_cache128MB_4kb_randread_scenario_1
	case strings.HasPrefix(kind, "cache"):
		identity.Category = CategoryCache
		identity.CacheSize = stringPtr(strings.TrimPrefix(kind, "cache"))
		if len(parts) >= 4 {
			identity.BlockSize = stringPtr(parts[2])
			identity.AccessPattern = stringPtr(parts[3])
		}

	// Channel/chip scaling: wl_ch4_chip2_4kb_randread_scenario_1
	case strings.HasPrefix(kind, "ch"):
		identity.Category = CategoryChChip
		identity.Channels = matchCount(channelsPattern, kind)
		if len(parts) >= 3 && strings.HasPrefix(parts[2], "chip") {
			identity.ChipsPerChannel = matchCount(chipsPattern, parts[2])
		}
		if len(parts) >= 5 {
			identity.BlockSize = stringPtr(parts[3])
			identity.AccessPattern = stringPtr(parts[4])
		}

	// I/O queue depth scaling: wl_ioqd32_4kb_randwrite_scenario_1
	case strings.HasPrefix(kind, "ioqd"):
		identity.Category = CategoryIOQD
		identity.IOQueueDepth = matchCount(queuedPattern, kind)
		if len(parts) >= 4 {
			identity.BlockSize = stringPtr(parts[2])
			identity.AccessPattern = stringPtr(parts[3])
		}

	// TPCC experiments select their axis with a sub token:
	// wl_tpcc_cache1GB_scenario_1, wl_tpcc_ch4_chip2_scenario_1, wl_tpcc_ioqd8_scenario_1
	case kind == "tpcc":
		identity.Category = CategoryTPCC
		identity.AccessPattern = stringPtr("tpcc")
		if len(parts) >= 3 {
			parseTPCCVariant(&identity, parts)
		}
	}

	return identity
}

func parseTPCCVariant(identity *Identity, parts []string) {
	sub := parts[2]
	switch {
	case strings.HasPrefix(sub, "cache"):
		identity.TPCCVariant = variantPtr(VariantCache)
		identity.CacheSize = stringPtr(strings.TrimPrefix(sub, "cache"))
	case strings.HasPrefix(sub, "ch"):
		identity.TPCCVariant = variantPtr(VariantChChip)
		identity.Channels = matchCount(channelsPattern, sub)
		if len(parts) >= 4 && strings.HasPrefix(parts[3], "chip") {
			identity.ChipsPerChannel = matchCount(chipsPattern, parts[3])
		}
	case strings.HasPrefix(sub, "ioqd"):
		identity.TPCCVariant = variantPtr(VariantIOQD)
		identity.IOQueueDepth = matchCount(queuedPattern, sub)
	}
}

// matchCount extracts the integer following a token prefix, returning nil
// when the token carries no parsable count.
func matchCount(pattern *regexp.Regexp, token string) *int64 {
	match := pattern.FindStringSubmatch(token)
	if match == nil {
		return nil
	}
	count, err := strconv.ParseInt(match[1], 10, 64)
	if err != nil {
		return nil
	}
	return &count
}

// Fields returns the identity as a flat field mapping. Every identity column
// is always present so the batch header stays stable; unset axis fields map
// to nil.
func (i Identity) Fields() map[string]interface{} {
	fields := map[string]interface{}{
		"exp_name":          i.ExpName,
		"category":          string(i.Category),
		"cache_size":        nil,
		"channels":          nil,
		"chips_per_channel": nil,
		"io_queue_depth":    nil,
		"block_size":        nil,
		"access_pattern":    nil,
		"tpcc_variant":      nil,
	}
	if i.CacheSize != nil {
		fields["cache_size"] = *i.CacheSize
	}
	if i.Channels != nil {
		fields["channels"] = *i.Channels
	}
	if i.ChipsPerChannel != nil {
		fields["chips_per_channel"] = *i.ChipsPerChannel
	}
	if i.IOQueueDepth != nil {
		fields["io_queue_depth"] = *i.IOQueueDepth
	}
	if i.BlockSize != nil {
		fields["block_size"] = *i.BlockSize
	}
	if i.AccessPattern != nil {
		fields["access_pattern"] = *i.AccessPattern
	}
	if i.TPCCVariant != nil {
		fields["tpcc_variant"] = string(*i.TPCCVariant)
	}
	return fields
}

func stringPtr(value string) *string {
	return &value
}

func variantPtr(value Variant) *Variant {
	return &value
}
