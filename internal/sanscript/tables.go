package sanscript

// Devanagari source characters in code-chart order. Each roman scheme
// lists its values in the same order, so one rune slice serves every
// scheme.
var (
	vowelRunes = []rune{
		'अ', 'आ', 'इ', 'ई', 'उ', 'ऊ', 'ऋ', 'ॠ', 'ऌ', 'ॡ', 'ए', 'ऐ', 'ओ', 'औ',
	}

	// Vowel signs (matras), parallel to vowelRunes[1:]: there is no sign
	// for the inherent अ.
	markRunes = []rune{
		'ा', 'ि', 'ी', 'ु', 'ू', 'ृ', 'ॄ', 'ॢ', 'ॣ', 'े', 'ै', 'ो', 'ौ',
	}

	consonantRunes = []rune{
		'क', 'ख', 'ग', 'घ', 'ङ',
		'च', 'छ', 'ज', 'झ', 'ञ',
		'ट', 'ठ', 'ड', 'ढ', 'ण',
		'त', 'थ', 'द', 'ध', 'न',
		'प', 'फ', 'ब', 'भ', 'म',
		'य', 'र', 'ल', 'व',
		'श', 'ष', 'स', 'ह',
		'ळ',
	}

	// Anusvara, visarga, candrabindu, avagraha, om, dandas, digits.
	symbolRunes = []rune{
		'ं', 'ः', 'ँ', 'ऽ', 'ॐ', '।', '॥',
		'०', '१', '२', '३', '४', '५', '६', '७', '८', '९',
	}
)

const virama = '्'

// romanScheme holds one target scheme's values, parallel to the rune
// slices above.
type romanScheme struct {
	name       string
	vowels     []string
	consonants []string
	symbols    []string
}

var iastScheme = &romanScheme{
	name: IAST,
	vowels: []string{
		"a", "ā", "i", "ī", "u", "ū", "ṛ", "ṝ", "ḷ", "ḹ", "e", "ai", "o", "au",
	},
	consonants: []string{
		"k", "kh", "g", "gh", "ṅ",
		"c", "ch", "j", "jh", "ñ",
		"ṭ", "ṭh", "ḍ", "ḍh", "ṇ",
		"t", "th", "d", "dh", "n",
		"p", "ph", "b", "bh", "m",
		"y", "r", "l", "v",
		"ś", "ṣ", "s", "h",
		"ḻ",
	},
	symbols: []string{
		"ṃ", "ḥ", "m̐", "'", "oṃ", "|", "||",
		"0", "1", "2", "3", "4", "5", "6", "7", "8", "9",
	},
}

var hkScheme = &romanScheme{
	name: HarvardKyoto,
	vowels: []string{
		"a", "A", "i", "I", "u", "U", "R", "RR", "lR", "lRR", "e", "ai", "o", "au",
	},
	consonants: []string{
		"k", "kh", "g", "gh", "G",
		"c", "ch", "j", "jh", "J",
		"T", "Th", "D", "Dh", "N",
		"t", "th", "d", "dh", "n",
		"p", "ph", "b", "bh", "m",
		"y", "r", "l", "v",
		"z", "S", "s", "h",
		"L",
	},
	symbols: []string{
		"M", "H", "~", "'", "oM", "|", "||",
		"0", "1", "2", "3", "4", "5", "6", "7", "8", "9",
	},
}

var velthuisScheme = &romanScheme{
	name: Velthuis,
	vowels: []string{
		"a", "aa", "i", "ii", "u", "uu", ".r", ".rr", ".l", ".ll", "e", "ai", "o", "au",
	},
	consonants: []string{
		"k", "kh", "g", "gh", "\"n",
		"c", "ch", "j", "jh", "~n",
		".t", ".th", ".d", ".dh", ".n",
		"t", "th", "d", "dh", "n",
		"p", "ph", "b", "bh", "m",
		"y", "r", "l", "v",
		"\"s", ".s", "s", "h",
		"L",
	},
	symbols: []string{
		".m", ".h", "/", ".a", "o.m", "|", "||",
		"0", "1", "2", "3", "4", "5", "6", "7", "8", "9",
	},
}

var slp1Scheme = &romanScheme{
	name: SLP1,
	vowels: []string{
		"a", "A", "i", "I", "u", "U", "f", "F", "x", "X", "e", "E", "o", "O",
	},
	consonants: []string{
		"k", "K", "g", "G", "N",
		"c", "C", "j", "J", "Y",
		"w", "W", "q", "Q", "R",
		"t", "T", "d", "D", "n",
		"p", "P", "b", "B", "m",
		"y", "r", "l", "v",
		"S", "z", "s", "h",
		"L",
	},
	symbols: []string{
		"M", "H", "~", "'", "oM", "|", "||",
		"0", "1", "2", "3", "4", "5", "6", "7", "8", "9",
	},
}

var wxScheme = &romanScheme{
	name: WX,
	vowels: []string{
		"a", "A", "i", "I", "u", "U", "q", "Q", "L", "LV", "e", "E", "o", "O",
	},
	consonants: []string{
		"k", "K", "g", "G", "f",
		"c", "C", "j", "J", "F",
		"t", "T", "d", "D", "N",
		"w", "W", "x", "X", "n",
		"p", "P", "b", "B", "m",
		"y", "r", "l", "v",
		"S", "R", "s", "h",
		"lY",
	},
	symbols: []string{
		"M", "H", "z", "Z", "oM", "|", "||",
		"0", "1", "2", "3", "4", "5", "6", "7", "8", "9",
	},
}

var itransScheme = &romanScheme{
	name: ITRANS,
	vowels: []string{
		"a", "A", "i", "I", "u", "U", "RRi", "RRI", "LLi", "LLI", "e", "ai", "o", "au",
	},
	consonants: []string{
		"k", "kh", "g", "gh", "~N",
		"ch", "Ch", "j", "jh", "~n",
		"T", "Th", "D", "Dh", "N",
		"t", "th", "d", "dh", "n",
		"p", "ph", "b", "bh", "m",
		"y", "r", "l", "v",
		"sh", "Sh", "s", "h",
		"L",
	},
	symbols: []string{
		"M", "H", ".N", ".a", "OM", "|", "||",
		"0", "1", "2", "3", "4", "5", "6", "7", "8", "9",
	},
}

// lookup is a romanScheme compiled into rune-keyed maps.
type lookup struct {
	inherent   string // value of the inherent vowel अ
	vowels     map[rune]string
	marks      map[rune]string
	consonants map[rune]string
	symbols    map[rune]string
}

var lookups = map[string]*lookup{}

func init() {
	for _, s := range []*romanScheme{
		iastScheme, hkScheme, velthuisScheme, slp1Scheme, wxScheme, itransScheme,
	} {
		lookups[s.name] = compile(s)
	}
}

// compile builds the rune-keyed maps for one scheme. Vowel signs reuse
// the vowel values: the sign at index i writes the same roman text as
// the independent vowel at index i+1.
func compile(s *romanScheme) *lookup {
	tb := &lookup{
		inherent:   s.vowels[0],
		vowels:     make(map[rune]string, len(vowelRunes)),
		marks:      make(map[rune]string, len(markRunes)),
		consonants: make(map[rune]string, len(consonantRunes)),
		symbols:    make(map[rune]string, len(symbolRunes)),
	}
	for i, r := range vowelRunes {
		tb.vowels[r] = s.vowels[i]
	}
	for i, r := range markRunes {
		tb.marks[r] = s.vowels[i+1]
	}
	for i, r := range consonantRunes {
		tb.consonants[r] = s.consonants[i]
	}
	for i, r := range symbolRunes {
		tb.symbols[r] = s.symbols[i]
	}
	return tb
}
