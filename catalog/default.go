// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package catalog

import "github.com/someonegg/panelmatch"

const DefaultSupplierID = "dva-duba"

// DefaultSupplier is the catalog seeded into an empty store.
func DefaultSupplier() panelmatch.Supplier {
	return panelmatch.Supplier{
		ID:        DefaultSupplierID,
		Name:      "Два дуба",
		Materials: defaultMaterials(),
	}
}

func defaultMaterials() []panelmatch.Material {
	return []panelmatch.Material{
		{ID: "1", Wood: "Дуб", ShieldType: "Цельноламельный", Grade: "—", Thickness: 20, Width: 620, Length: 900, Price: 3350},
		{ID: "2", Wood: "Дуб", ShieldType: "Цельноламельный", Grade: "—", Thickness: 20, Width: 620, Length: 1000, Price: 3850},
		{ID: "3", Wood: "Дуб", ShieldType: "Цельноламельный", Grade: "—", Thickness: 20, Width: 620, Length: 1100, Price: 4250},
		{ID: "4", Wood: "Дуб", ShieldType: "Сращённый", Grade: "—", Thickness: 20, Width: 620, Length: 1200, Price: 2700},
		{ID: "5", Wood: "Дуб", ShieldType: "Цельноламельный", Grade: "—", Thickness: 20, Width: 620, Length: 1200, Price: 4650},
		{ID: "6", Wood: "Дуб", ShieldType: "Цельноламельный", Grade: "—", Thickness: 20, Width: 620, Length: 1300, Price: 5000},
		{ID: "7", Wood: "Дуб", ShieldType: "Цельноламельный", Grade: "—", Thickness: 20, Width: 620, Length: 1400, Price: 5400},
		{ID: "8", Wood: "Дуб", ShieldType: "Сращённый", Grade: "—", Thickness: 20, Width: 620, Length: 1500, Price: 3350},
		{ID: "9", Wood: "Дуб", ShieldType: "Цельноламельный", Grade: "—", Thickness: 20, Width: 620, Length: 1500, Price: 5800},
		{ID: "10", Wood: "Дуб", ShieldType: "Цельноламельный", Grade: "—", Thickness: 20, Width: 620, Length: 1600, Price: 6350},
		{ID: "11", Wood: "Дуб", ShieldType: "Цельноламельный", Grade: "—", Thickness: 20, Width: 620, Length: 1700, Price: 6750},
		{ID: "12", Wood: "Дуб", ShieldType: "Сращённый", Grade: "—", Thickness: 20, Width: 620, Length: 1800, Price: 4050},
		{ID: "13", Wood: "Дуб", ShieldType: "Цельноламельный", Grade: "—", Thickness: 20, Width: 620, Length: 1800, Price: 7150},
		{ID: "14", Wood: "Дуб", ShieldType: "Цельноламельный", Grade: "—", Thickness: 20, Width: 620, Length: 1900, Price: 7550},
		{ID: "15", Wood: "Дуб", ShieldType: "Сращённый", Grade: "—", Thickness: 20, Width: 620, Length: 2000, Price: 4500},
		{ID: "16", Wood: "Дуб", ShieldType: "Цельноламельный", Grade: "—", Thickness: 20, Width: 620, Length: 2000, Price: 7950},
		{ID: "17", Wood: "Дуб", ShieldType: "Цельноламельный", Grade: "—", Thickness: 20, Width: 620, Length: 2100, Price: 9150},
		{ID: "18", Wood: "Дуб", ShieldType: "Цельноламельный", Grade: "—", Thickness: 20, Width: 620, Length: 2200, Price: 9550},
		{ID: "19", Wood: "Дуб", ShieldType: "Цельноламельный", Grade: "—", Thickness: 20, Width: 620, Length: 2300, Price: 10000},
		{ID: "20", Wood: "Дуб", ShieldType: "Сращённый", Grade: "—", Thickness: 20, Width: 620, Length: 2400, Price: 5400},
		{ID: "21", Wood: "Дуб", ShieldType: "Цельноламельный", Grade: "—", Thickness: 20, Width: 620, Length: 2400, Price: 11950},
		{ID: "22", Wood: "Дуб", ShieldType: "Цельноламельный", Grade: "—", Thickness: 20, Width: 620, Length: 2500, Price: 12400},
		{ID: "23", Wood: "Дуб", ShieldType: "Цельноламельный", Grade: "—", Thickness: 20, Width: 620, Length: 2600, Price: 12900},
		{ID: "24", Wood: "Дуб", ShieldType: "Цельноламельный", Grade: "—", Thickness: 20, Width: 620, Length: 2700, Price: 13400},
		{ID: "25", Wood: "Дуб", ShieldType: "Цельноламельный", Grade: "—", Thickness: 20, Width: 620, Length: 2800, Price: 14250},
		{ID: "26", Wood: "Дуб", ShieldType: "Цельноламельный", Grade: "—", Thickness: 20, Width: 620, Length: 2900, Price: 14750},
		{ID: "27", Wood: "Дуб", ShieldType: "Сращённый", Grade: "—", Thickness: 20, Width: 620, Length: 3000, Price: 6700},
		{ID: "28", Wood: "Дуб", ShieldType: "Цельноламельный", Grade: "—", Thickness: 20, Width: 620, Length: 3000, Price: 15400},
		{ID: "29", Wood: "Дуб", ShieldType: "Сращённый", Grade: "—", Thickness: 20, Width: 620, Length: 4000, Price: 8950},
		{ID: "30", Wood: "Дуб", ShieldType: "Сращённый", Grade: "—", Thickness: 20, Width: 900, Length: 2000, Price: 6500},
		{ID: "31", Wood: "Дуб", ShieldType: "Сращённый", Grade: "—", Thickness: 20, Width: 900, Length: 3000, Price: 9750},
		{ID: "32", Wood: "Дуб", ShieldType: "Сращённый", Grade: "—", Thickness: 20, Width: 1200, Length: 3000, Price: 13000},
		{ID: "33", Wood: "Дуб", ShieldType: "Сращённый", Grade: "—", Thickness: 30, Width: 620, Length: 1800, Price: 6100},
		{ID: "34", Wood: "Дуб", ShieldType: "Сращённый", Grade: "—", Thickness: 30, Width: 620, Length: 2000, Price: 6700},
		{ID: "35", Wood: "Дуб", ShieldType: "Сращённый", Grade: "—", Thickness: 30, Width: 620, Length: 2400, Price: 8100},
		{ID: "36", Wood: "Дуб", ShieldType: "Сращённый", Grade: "—", Thickness: 30, Width: 620, Length: 3000, Price: 10100},
		{ID: "37", Wood: "Дуб", ShieldType: "Сращённый", Grade: "—", Thickness: 30, Width: 900, Length: 3000, Price: 14600},
		{ID: "38", Wood: "Дуб", ShieldType: "Сращённый", Grade: "—", Thickness: 30, Width: 1200, Length: 3000, Price: 19500},
		{ID: "39", Wood: "Дуб", ShieldType: "Цельноламельный", Grade: "—", Thickness: 40, Width: 620, Length: 900, Price: 6700},
		{ID: "40", Wood: "Дуб", ShieldType: "Цельноламельный", Grade: "—", Thickness: 40, Width: 620, Length: 1000, Price: 7700},
		{ID: "41", Wood: "Дуб", ShieldType: "Цельноламельный", Grade: "—", Thickness: 40, Width: 620, Length: 1100, Price: 8500},
	}
}
