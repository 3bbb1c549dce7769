package models

// Japanese display strings live here so the business enums stay free of
// presentation text. Used by exports and list views only.

var rankLabels = map[Rank]string{
	RankStoreManager: "店長",
	RankLeader:       "リーダー",
	RankEmployee:     "社員",
	RankPartner:      "パートナー",
	RankNewPartner:   "新人パートナー",
}

func (r Rank) Label() string {
	return rankLabels[r]
}

var departmentLabels = map[Department]string{
	DeptSeasonal:    "季節",
	DeptAppliance:   "家電",
	DeptInformation: "情報",
	DeptTelecom:     "通信",
	DeptNone:        "未配属",
}

func (d Department) Label() string {
	if l, ok := departmentLabels[d]; ok {
		return l
	}
	return departmentLabels[DeptNone]
}

var skillLabels = map[string]string{
	"fridge":  "冷蔵庫",
	"washing": "洗濯機",
	"ac":      "エアコン",
	"tv":      "テレビ",
	"mobile":  "携帯",
	"pc":      "パソコン",
}

func SkillLabel(key string) string {
	if l, ok := skillLabels[key]; ok {
		return l
	}
	return key
}
