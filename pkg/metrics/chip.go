package metrics

import (
	"github.com/montanaflynn/stats"

	"github.com/JongHoB/mqsim-summary/pkg/results"
)

const chipPath = "SSDDevice/SSDDevice.FlashChips"

// ChipMetrics extracts per-chip activity fractions averaged across all chips
// and derives the power and energy indexes from the given weight table. A
// chip missing a fraction attribute contributes 0.0 to the averages.
//
// The energy-per-I/O index divides the summed power index by the host request
// count and is nil when that count is absent or zero. See the package
// documentation for why the index is only a relative heuristic.
func ChipMetrics(doc *results.Document, hostRequests *int64, model PowerModel) Row {
	out := Row{}
	chips := doc.FindAllPath(chipPath)
	if len(chips) == 0 {
		return out
	}

	samples := struct {
		exec, dataXfer, overlap, idle []float64
	}{}
	totalPowerIndex := 0.0

	for _, chip := range chips {
		exec := fractionAttr(chip, "Fraction_of_Time_in_Execution")
		dataXfer := fractionAttr(chip, "Fraction_of_Time_in_DataXfer")
		overlap := fractionAttr(chip, "Fraction_of_Time_in_DataXfer_and_Execution")
		idle := fractionAttr(chip, "Fraction_of_Time_Idle")

		samples.exec = append(samples.exec, exec)
		samples.dataXfer = append(samples.dataXfer, dataXfer)
		samples.overlap = append(samples.overlap, overlap)
		samples.idle = append(samples.idle, idle)

		totalPowerIndex += exec*model.Exec +
			dataXfer*model.DataXfer +
			overlap*model.Overlap +
			idle*model.Idle
	}

	out["chip_Avg_Fraction_Exec"] = mean(samples.exec)
	out["chip_Avg_Fraction_DataXfer"] = mean(samples.dataXfer)
	out["chip_Avg_Fraction_Overlap"] = mean(samples.overlap)
	out["chip_Avg_Fraction_Idle"] = mean(samples.idle)

	out["energy_Total_Chip_Power_Index"] = totalPowerIndex

	if hostRequests != nil && *hostRequests > 0 {
		out["energy_Energy_per_IO_Index"] = totalPowerIndex / float64(*hostRequests)
	} else {
		out["energy_Energy_per_IO_Index"] = nil
	}

	return out
}

func fractionAttr(chip *results.Element, name string) float64 {
	value, ok := chip.FloatAttr(name)
	if !ok {
		return 0.0
	}
	return value
}

func mean(samples []float64) interface{} {
	value, err := stats.Mean(samples)
	if err != nil {
		return nil
	}
	return value
}
