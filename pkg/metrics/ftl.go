package metrics

import (
	"github.com/JongHoB/mqsim-summary/pkg/results"
)

const ftlPath = "SSDDevice/SSDDevice.FTL"

// FTLMetrics extracts flash-translation-layer statistics: flash command
// totals accumulated through ClassifyCommandAttr, address mapping cache (CMT)
// hit rates, and garbage collection counters. The command totals are genuine
// counters over the attributes present in the document, so they are emitted
// (possibly zero) whenever the FTL node exists.
func FTLMetrics(doc *results.Document) Row {
	out := Row{}
	ftl := doc.FindPath(ftlPath)
	if ftl == nil {
		return out
	}

	var ordinary, mapping [3]int64
	for _, attr := range ftl.Attrs {
		count, ok := results.SafeInt(attr.Value)
		if !ok {
			continue
		}
		class, ok := ClassifyCommandAttr(attr.Name.Local)
		if !ok {
			continue
		}
		if class.Mapping {
			mapping[class.Op] += count
		} else {
			ordinary[class.Op] += count
		}
	}

	out["ftl_Total_Flash_Read_CMD"] = ordinary[OpRead]
	out["ftl_Total_Flash_Program_CMD"] = ordinary[OpProgram]
	out["ftl_Total_Flash_Erase_CMD"] = ordinary[OpErase]

	out["ftl_Mapping_Read_CMD"] = mapping[OpRead]
	out["ftl_Mapping_Program_CMD"] = mapping[OpProgram]
	out["ftl_Mapping_Erase_CMD"] = mapping[OpErase]

	queries, okQueries := ftl.IntAttr("Total_CMT_Queries")
	hits, okHits := ftl.IntAttr("CMT_Hits")
	readQueries, okReadQueries := ftl.IntAttr("Total_CMT_Read_Queries")
	readHits, okReadHits := ftl.IntAttr("CMT_Read_Hits")
	writeQueries, okWriteQueries := ftl.IntAttr("Total_CMT_Write_Queries")
	writeHits, okWriteHits := ftl.IntAttr("CMT_Write_Hits")

	out["ftl_Total_CMT_Queries"] = intOrNil(queries, okQueries)
	out["ftl_CMT_Hits"] = intOrNil(hits, okHits)
	out["ftl_Total_CMT_Read_Queries"] = intOrNil(readQueries, okReadQueries)
	out["ftl_CMT_Read_Hits"] = intOrNil(readHits, okReadHits)
	out["ftl_Total_CMT_Write_Queries"] = intOrNil(writeQueries, okWriteQueries)
	out["ftl_CMT_Write_Hits"] = intOrNil(writeHits, okWriteHits)

	out["ftl_CMT_Hit_Rate"] = hitRate(hits, okHits, queries, okQueries)
	out["ftl_CMT_Read_Hit_Rate"] = hitRate(readHits, okReadHits, readQueries, okReadQueries)
	out["ftl_CMT_Write_Hit_Rate"] = hitRate(writeHits, okWriteHits, writeQueries, okWriteQueries)

	out["ftl_Total_GC_Executions"] = intOrNil(ftl.IntAttr("Total_GC_Executions"))
	out["ftl_Average_Page_Movement_For_GC"] = floatOrNil(ftl.FloatAttr("Average_Page_Movement_For_GC"))

	return out
}
