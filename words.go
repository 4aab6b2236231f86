// Word tables for English number-to-text conversion.
package num2english

const (
	chunkBase = 1000
	hundred   = 100

	wordNegative = "negative"
	wordHundred  = "hundred"
	wordAnd      = "and"
	wordZero     = "zero"
	wordTen      = "ten"
)

// ones is indexed by value (0–19). writeChunk never reads index 0; a
// whole zero is named by wordZero.
var ones = [20]string{
	"zero",
	"one",
	"two",
	"three",
	"four",
	"five",
	"six",
	"seven",
	"eight",
	"nine",
	"ten",
	"eleven",
	"twelve",
	"thirteen",
	"fourteen",
	"fifteen",
	"sixteen",
	"seventeen",
	"eighteen",
	"nineteen",
}

// tens is indexed by tens digit (2–9); indices 0 and 1 are unused.
var tens = [10]string{
	"",
	"",
	"twenty",
	"thirty",
	"forty",
	"fifty",
	"sixty",
	"seventy",
	"eighty",
	"ninety",
}

// magnitudes holds the short-scale name of 1000^(i+1) at index i, so the
// chunk at position p (p >= 1, least significant first) takes magnitudes[p-1].
// Names from vigintillion upward follow the Conway–Wechsler system; the
// table ends at decicentillion (10^333), which is past math.MaxFloat64.
var magnitudes = [...]string{
	"thousand",
	"million",
	"billion",
	"trillion",
	"quadrillion",
	"quintillion",
	"sextillion",
	"septillion",
	"octillion",
	"nonillion",
	"decillion",
	"undecillion",
	"duodecillion",
	"tredecillion",
	"quattuordecillion",
	"quindecillion",
	"sexdecillion",
	"septendecillion",
	"octodecillion",
	"novemdecillion",
	"vigintillion",
	"unvigintillion",
	"duovigintillion",
	"tresvigintillion",
	"quattuorvigintillion",
	"quinquavigintillion",
	"sesvigintillion",
	"septemvigintillion",
	"octovigintillion",
	"novemvigintillion",
	"trigintillion",
	"untrigintillion",
	"duotrigintillion",
	"trestrigintillion",
	"quattuortrigintillion",
	"quinquatrigintillion",
	"sestrigintillion",
	"septentrigintillion",
	"octotrigintillion",
	"noventrigintillion",
	"quadragintillion",
	"unquadragintillion",
	"duoquadragintillion",
	"tresquadragintillion",
	"quattuorquadragintillion",
	"quinquaquadragintillion",
	"sesquadragintillion",
	"septenquadragintillion",
	"octoquadragintillion",
	"novenquadragintillion",
	"quinquagintillion",
	"unquinquagintillion",
	"duoquinquagintillion",
	"tresquinquagintillion",
	"quattuorquinquagintillion",
	"quinquaquinquagintillion",
	"sesquinquagintillion",
	"septenquinquagintillion",
	"octoquinquagintillion",
	"novenquinquagintillion",
	"sexagintillion",
	"unsexagintillion",
	"duosexagintillion",
	"tresexagintillion",
	"quattuorsexagintillion",
	"quinquasexagintillion",
	"sesexagintillion",
	"septensexagintillion",
	"octosexagintillion",
	"novensexagintillion",
	"septuagintillion",
	"unseptuagintillion",
	"duoseptuagintillion",
	"treseptuagintillion",
	"quattuorseptuagintillion",
	"quinquaseptuagintillion",
	"seseptuagintillion",
	"septenseptuagintillion",
	"octoseptuagintillion",
	"novenseptuagintillion",
	"octogintillion",
	"unoctogintillion",
	"duooctogintillion",
	"tresoctogintillion",
	"quattuoroctogintillion",
	"quinquaoctogintillion",
	"sexoctogintillion",
	"septemoctogintillion",
	"octooctogintillion",
	"novemoctogintillion",
	"nonagintillion",
	"unnonagintillion",
	"duononagintillion",
	"trenonagintillion",
	"quattuornonagintillion",
	"quinquanonagintillion",
	"senonagintillion",
	"septenonagintillion",
	"octononagintillion",
	"novenonagintillion",
	"centillion",
	"uncentillion",
	"duocentillion",
	"trescentillion",
	"quattuorcentillion",
	"quinquacentillion",
	"sexcentillion",
	"septencentillion",
	"octocentillion",
	"novencentillion",
	"decicentillion",
}

// placeWords maps a count of fractional digits d to the singular
// place-value word at index d-1: tenth, hundredth, thousandth,
// ten-thousandth, hundred-thousandth, millionth, ...
var placeWords = buildPlaceWords()

func buildPlaceWords() []string {
	words := make([]string, 0, 2+3*len(magnitudes))
	words = append(words, "tenth", wordHundred+"th")
	for _, mag := range magnitudes {
		words = append(words,
			mag+"th",
			wordTen+"-"+mag+"th",
			wordHundred+"-"+mag+"th",
		)
	}
	return words
}
