package parser

import "fmt"

// variantClasses is the full table of interchangeable spellings. Within a class every member may stand
// in for every other one.
var variantClasses = []VariantClass{
	{Name: "の", Members: []string{"の", "ノ", "之"}},
	{Name: "ツ", Members: []string{"ツ", "ッ"}},
	{Name: "ケ", Members: []string{"ケ", "ヶ", "が", "ガ"}},
	{Name: "薮", Members: []string{"薮", "藪", "籔"}},
	{Name: "崎", Members: []string{"崎", "\uFA11"}},
	{Name: "檜", Members: []string{"檜", "桧"}},
	{Name: "竈", Members: []string{"竈", "竃", "釜"}},
	{Name: "舘", Members: []string{"舘", "館"}},
	{Name: "鰺", Members: []string{"鰺", "鯵"}},
	{Name: "脊", Members: []string{"脊", "背"}},
	{Name: "渕", Members: []string{"渕", "淵"}},
	{Name: "己", Members: []string{"己", "巳"}},
	{Name: "槇", Members: []string{"槇", "槙"}},
	{Name: "治", Members: []string{"治", "冶"}},
	{Name: "佛", Members: []string{"佛", "仏"}},
	{Name: "澤", Members: []string{"澤", "沢"}},
	{Name: "塚", Members: []string{"塚", "\uFA10"}},
	{Name: "恵", Members: []string{"恵", "惠"}},
	{Name: "穂", Members: []string{"穂", "穗"}},
	{Name: "梼", Members: []string{"梼", "檮"}},
	{Name: "蛍", Members: []string{"蛍", "螢"}},
	{Name: "與", Members: []string{"與", "与"}},
	{Name: "瀧", Members: []string{"瀧", "滝"}},
	{Name: "籠", Members: []string{"籠", "篭"}},
	{Name: "濱", Members: []string{"濱", "浜"}},
	{Name: "祗", Members: []string{"祗", "祇"}},
	{Name: "曾", Members: []string{"曾", "曽"}},
	{Name: "國", Members: []string{"國", "国"}},
	{Name: "鉋", Members: []string{"鉋", "飽"}},
	{Name: "鷆", Members: []string{"鷆", "鵇"}},
	{Name: "斑", Members: []string{"斑", "班"}},
	{Name: "櫻", Members: []string{"櫻", "桜"}},
	{Name: "櫟", Members: []string{"櫟", "椚"}},
	{Name: "冨", Members: []string{"冨", "富"}},
	{Name: "龍", Members: []string{"龍", "竜"}},
	{Name: "嶋", Members: []string{"嶋", "島"}},
	{Name: "驒", Members: []string{"驒", "騨"}},
	{Name: "條", Members: []string{"條", "条"}},
	{Name: "邊", Members: []string{"邊", "邉", "辺"}},
	{Name: "廣", Members: []string{"廣", "広"}},
	{Name: "德", Members: []string{"德", "徳"}},
	{Name: "鹽", Members: []string{"鹽", "塩"}},
}

var townVariantNames = []string{
	"の", "ツ", "ケ", "薮", "崎", "檜", "竈", "舘", "鰺", "脊", "渕", "己", "槇", "治", "佛", "澤",
	"塚", "恵", "穂", "梼", "蛍", "與", "瀧", "籠", "濱", "祗", "曾", "國", "鉋", "鷆", "斑", "櫻",
	"櫟", "冨", "嶋", "條", "邊", "廣", "德", "鹽",
}

var cityCommonVariantNames = []string{"ケ"}

// cityVariantNamesByPrefecture enables classes that only show up in city names of one prefecture.
var cityVariantNamesByPrefecture = map[string][]string{
	"青森県": {"舘"},
	"宮城県": {"竈"},
	"茨城県": {"龍", "嶋"},
	"東京都": {"檜"},
	"岐阜県": {"驒"},
	"兵庫県": {"塚"},
	"奈良県": {"條"},
	"高知県": {"梼"},
	"福岡県": {"恵"},
	"長崎県": {"崎"},
	"宮崎県": {"崎"},
}

var (
	townVariants             = mustVariantClasses(townVariantNames...)
	cityVariantsByPrefecture = buildCityVariants()
	cityCommonVariants       = mustVariantClasses(cityCommonVariantNames...)
)

func buildCityVariants() map[string][]VariantClass {
	m := make(map[string][]VariantClass, len(cityVariantNamesByPrefecture))
	for prefecture, names := range cityVariantNamesByPrefecture {
		m[prefecture] = mustVariantClasses(append(append([]string{}, cityCommonVariantNames...), names...)...)
	}
	return m
}

// cityVariantsFor returns the classes enabled at the city stage for a prefecture.
func cityVariantsFor(prefecture string) []VariantClass {
	if classes, ok := cityVariantsByPrefecture[prefecture]; ok {
		return classes
	}
	return cityCommonVariants
}

func mustVariantClasses(names ...string) []VariantClass {
	classes := make([]VariantClass, 0, len(names))
	for _, name := range names {
		class, ok := lookupVariantClass(name)
		if !ok {
			panic(fmt.Sprintf("parser: unknown variant class %q", name))
		}
		classes = append(classes, class)
	}
	return classes
}

func lookupVariantClass(name string) (VariantClass, bool) {
	for _, class := range variantClasses {
		if class.Name == name {
			return class, true
		}
	}
	return VariantClass{}, false
}
