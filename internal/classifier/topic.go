package classifier

// 标题中至少命中一个才算兽医/健康相关；只看标题，不看来源名
var vetHealthRules = append(rulesOf(
	// 兽医与动物
	`\bveterin`, `\banimal`, `\bpet\b`, `\bdog\b`, `\bcat\b`, `\bhorse`, `\bequine`,
	`\bbovine`, `\bcattle`, `\blivestock`, `\bpig\b`, `\bswine`, `\bpoultry`, `\bbird`,
	`\bwildlife`, `\bzoo\b`, `\bexotic`, `\bcanine`, `\bfeline`, `\bspecies`,
	// 临床
	`\bclinic`, `\bhospital`, `\bsurgery`, `\bdiagnos`, `\btreatment`, `\btherap`,
	`\bdisease`, `\bvirus`, `\bbacteri`, `\binfect`, `\bvaccine`, `\bimmun`,
	`\bpatholog`, `\boncolog`, `\bcancer`, `\btumor`,
	// 科研
	`\bstudy\b`, `\bscientist`, `\blab\b`,
	`\bone health`, `\bzoonotic`, `\bpublic health`, `\bepidemiolog`,
	`\bnutrition`, `\bdiet\b`, `\bpharma`, `\bdrug\b`, `\bclinical`,
	`\banatomy`, `\bphysiology`, `\bgenetics`, `\bmolecular`, `\bcell\b`,
	`\bdvm\b`, `\bvet\b`, `\bveterinary`, `\bresidency\b`, `\bintern\b`,
	`\bshelter`, `\brescue\b`, `\bwelfare`, `\bhumane`,
	`\bbreeding`, `\breproduction`, `\bfertility`, `\btheriogenology`,
	// 专科
	`\bcardio`, `\bneuro`, `\bortho`, `\bderma`, `\bophthalm`, `\bdental`,
	`\bemergency`, `\bcritical care`, `\banesthes`, `\bradiology`, `\bimaging`,
	`\bnecropsy`, `\bautopsy`, `\bbiopsy`, `\bhistology`,
	// 教育与认证
	`\bfellowship`, `\bscholarship`,
	`\baccredit`, `\bavma\b`, `\baaha\b`,
),
	// "research" 指杂志栏目时不算
	unless(`\bresearch`, `magazine`),
)

// 体育、无关院系等明显离题的标题
var offTopicRules = append(rulesOf(
	`football`, `basketball`, `baseball`, `softball`, `soccer`, `hockey`,
	`lacrosse`, `volleyball`, `tennis`, `golf`, `track and field`,
	`athlete`, `championship`, `tournament`, `playoff`, `coach\b`,
	`panther[s]?\b`,
	`ncaa`, `nec\b`,
	`spirit squad`, `cheerleading`, `dance team`,
	`entrepreneur`, `business school`, `mba\b`,
	`law school`, `computer science`,
	`music\b`, `theater`, `film\b`,
	`political`, `election`,
	`real estate`, `construction`,
),
	// 球队吉祥物与动物同名，后文有相关语境时放行
	unless(`shark[s]?\b`, `aquarium`),
	unless(`tiger[s]?\b`, `zoo`),
	unless(`bear[s]?\b`, `wildlife`),
	unless(`conference\b`, `veterinary`),
	unless(`engineering`, `biomedical`),
	unless(`art\b`, `animals`),
	unless(`president`, `university`),
	unless(`architecture`, `hospital`),
)

// IsVetHealthRelated 标题是否涉及兽医、动物或健康科学
func IsVetHealthRelated(title string) bool {
	return matchAny(vetHealthRules, title)
}

// IsOffTopic 标题命中离题关键词且不涉及兽医/健康时为 true。
// 相关性判断优先于离题判断。
func IsOffTopic(title string) bool {
	if !matchAny(offTopicRules, title) {
		return false
	}
	return !IsVetHealthRelated(title)
}
