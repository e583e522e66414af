package plural

import (
	"strings"

	"golang.org/x/text/language"
)

// cardinalBases lists the base languages with cardinal rules in the CLDR 32
// data bundled with golang.org/x/text/feature/plural. MatchPlural answers
// "other" for every language missing here.
var cardinalBases = func() map[string]struct{} {
	const bases = `af ak am ar ars as asa ast az be bem bez bg bh bm bn bo br brx bs
		ca ce cgg chr ckb cs cy da de dsb dv dz ee el en eo es et eu fa ff fi fil
		fo fr fur fy ga gd gl gsw gu guw gv ha haw he hi hr hsb hu hy id ig ii in
		io is it iu iw ja jbo jgo ji jmc jv jw ka kab kaj kcg kde kea kk kkj kl km
		kn ko ks ksb ksh ku kw ky lag lb lg lkt ln lo lt lv mas mg mgo mk ml mn mo
		mr ms mt my nah naq nb nd ne nl nn nnh no nqo nr nso ny nyn om or os pa pap
		pl prg ps pt rm ro rof ru rwk sah saq sd sdh se seh ses sg sh shi si sk sl
		sma smi smj smn sms sn so sq sr ss ssy st sv sw syr ta te teo th ti tig tk
		tl tn to tr ts tzm ug uk ur uz ve vi vo vun wa wae wo xh xog yi yo yue zh zu`

	m := make(map[string]struct{})
	for _, b := range strings.Fields(bases) {
		m[b] = struct{}{}
	}
	return m
}()

func hasCardinalRules(base language.Base) bool {
	_, ok := cardinalBases[base.String()]
	return ok
}
