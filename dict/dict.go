// Package dict holds the static semantic-grammar data tables used by the
// grammar engine: the 256-entry word dictionary and the 10 haiku case
// frames. Both tables are pure data, grounded byte-for-byte on the
// dictionary and frame tables in original_source/src/trigg.c.
package dict

// Feature bits for the semantic grammar, adapted from systemic grammar
// (Winograd, 1972). A DictEntry's Features field is a bitmask over these.
const (
	ING    = 1 << iota // present participle ("arriving")
	INF                // infinitive ("fall")
	MOTION             // verb of motion
	NS                 // singular noun
	NPL                // plural noun
	MASS               // mass noun
	AMB                // ambient/atmospheric adjective
	TIMED              // time-of-day noun/adjective
	TIMEY              // season noun/adjective
	AT                 // takes preposition "at"
	ON                 // takes preposition "on"
	IN                 // takes preposition "in"
	PREP               // preposition
	ADJ                // adjective
	OP                 // function word / adverb / punctuation
	DETS               // singular determiner
	DETPL              // plural determiner
	XLIT               // literal slot: low byte selects a fixed dictionary index
)

// Shorthand unions used by the frame table, matching F_VB/F_N/F_TIME/
// F_LOC/F_NOUN in trigg.c.
const (
	VB   = INF | MOTION
	N    = NS | NPL
	TIME = TIMED | TIMEY
	LOC  = AT | ON | IN
	NOUN = NS | NPL | MASS | TIME | LOC
)

// MaxDict is the fixed dictionary size; any byte indexes it without
// bounds checks.
const MaxDict = 256

// MaxH is the maximum number of word slots in one haiku / frame.
const MaxH = 16

// NFrames is the number of case frames in Frame.
const NFrames = 10

// HaikuSize is the expanded haiku text buffer size in bytes.
const HaikuSize = 256

// Entry is one dictionary word: its literal token text and the semantic
// features it satisfies. Index 0 is the sentinel "NIL" entry (Features
// 0), which terminates a haiku.
type Entry struct {
	Token    string
	Features uint32
}

// xlit-addressed literal slots, mirroring S_NL..S_BELOW in trigg.c: each
// selects a specific dictionary index rather than matching by feature.
const (
	slotNL     = XLIT | 1
	slotCO     = XLIT | 2
	slotMD     = XLIT | 3
	slotLIKE   = XLIT | 4
	slotA      = XLIT | 5
	slotTHE    = XLIT | 6
	slotOF     = XLIT | 7
	slotNO     = XLIT | 8
	slotS      = XLIT | 9
	slotAFTER  = XLIT | 10
	slotBEFORE = XLIT | 11
	slotAT     = XLIT | 12
	slotIN     = XLIT | 13
	slotON     = XLIT | 14
	slotUNDER  = XLIT | 15
	slotABOVE  = XLIT | 16
	slotBELOW  = XLIT | 17
)

// Dict is the static 256-entry vocabulary. Index 0 ("NIL") has Features 0
// and marks the end of a haiku; Dict never traps on an arbitrary byte
// index.
var Dict = [MaxDict]Entry{
	{Token: "NIL", Features: 0}, // 0
	{Token: "\n", Features: OP}, // 1
	{Token: "\b:", Features: OP}, // 2
	{Token: "\b--", Features: OP}, // 3
	{Token: "like", Features: OP}, // 4
	{Token: "a", Features: OP}, // 5
	{Token: "the", Features: OP}, // 6
	{Token: "of", Features: OP}, // 7
	{Token: "no", Features: OP}, // 8
	{Token: "\bs", Features: OP}, // 9
	{Token: "after", Features: OP}, // 10
	{Token: "before", Features: OP}, // 11
	{Token: "at", Features: PREP}, // 12
	{Token: "in", Features: PREP}, // 13
	{Token: "on", Features: PREP}, // 14
	{Token: "under", Features: PREP}, // 15
	{Token: "above", Features: PREP}, // 16
	{Token: "below", Features: PREP}, // 17
	{Token: "arriving", Features: ING | MOTION}, // 18
	{Token: "departing", Features: ING | MOTION}, // 19
	{Token: "going", Features: ING | MOTION}, // 20
	{Token: "coming", Features: ING | MOTION}, // 21
	{Token: "creeping", Features: ING | MOTION}, // 22
	{Token: "dancing", Features: ING | MOTION}, // 23
	{Token: "riding", Features: ING | MOTION}, // 24
	{Token: "strutting", Features: ING | MOTION}, // 25
	{Token: "leaping", Features: ING | MOTION}, // 26
	{Token: "leaving", Features: ING | MOTION}, // 27
	{Token: "entering", Features: ING | MOTION}, // 28
	{Token: "drifting", Features: ING | MOTION}, // 29
	{Token: "returning", Features: ING | MOTION}, // 30
	{Token: "rising", Features: ING | MOTION}, // 31
	{Token: "falling", Features: ING | MOTION}, // 32
	{Token: "rushing", Features: ING | MOTION}, // 33
	{Token: "soaring", Features: ING | MOTION}, // 34
	{Token: "travelling", Features: ING | MOTION}, // 35
	{Token: "turning", Features: ING | MOTION}, // 36
	{Token: "singing", Features: ING | MOTION}, // 37
	{Token: "walking", Features: ING | MOTION}, // 38
	{Token: "crying", Features: ING}, // 39
	{Token: "weeping", Features: ING}, // 40
	{Token: "lingering", Features: ING}, // 41
	{Token: "pausing", Features: ING}, // 42
	{Token: "shining", Features: ING}, // 43
	{Token: "fall", Features: INF | MOTION}, // 44
	{Token: "flow", Features: INF | MOTION}, // 45
	{Token: "wander", Features: INF | MOTION}, // 46
	{Token: "disappear", Features: INF | MOTION}, // 47
	{Token: "wait", Features: INF}, // 48
	{Token: "bloom", Features: INF}, // 49
	{Token: "doze", Features: INF}, // 50
	{Token: "dream", Features: INF}, // 51
	{Token: "laugh", Features: INF}, // 52
	{Token: "meditate", Features: INF}, // 53
	{Token: "listen", Features: INF}, // 54
	{Token: "sing", Features: INF}, // 55
	{Token: "decay", Features: INF}, // 56
	{Token: "cling", Features: INF}, // 57
	{Token: "grow", Features: INF}, // 58
	{Token: "forget", Features: INF}, // 59
	{Token: "remain", Features: INF}, // 60
	{Token: "arid", Features: ADJ}, // 61
	{Token: "abandoned", Features: ADJ}, // 62
	{Token: "aged", Features: ADJ}, // 63
	{Token: "ancient", Features: ADJ}, // 64
	{Token: "full", Features: ADJ}, // 65
	{Token: "glorious", Features: ADJ}, // 66
	{Token: "good", Features: ADJ}, // 67
	{Token: "beautiful", Features: ADJ}, // 68
	{Token: "first", Features: ADJ}, // 69
	{Token: "last", Features: ADJ}, // 70
	{Token: "forsaken", Features: ADJ}, // 71
	{Token: "sad", Features: ADJ}, // 72
	{Token: "mandarin", Features: ADJ}, // 73
	{Token: "naked", Features: ADJ}, // 74
	{Token: "nameless", Features: ADJ}, // 75
	{Token: "old", Features: ADJ}, // 76
	{Token: "quiet", Features: ADJ | AMB}, // 77
	{Token: "peaceful", Features: ADJ}, // 78
	{Token: "still", Features: ADJ}, // 79
	{Token: "tranquil", Features: ADJ}, // 80
	{Token: "bare", Features: ADJ}, // 81
	{Token: "evening", Features: ADJ | TIMED}, // 82
	{Token: "morning", Features: ADJ | TIMED}, // 83
	{Token: "afternoon", Features: ADJ | TIMED}, // 84
	{Token: "spring", Features: ADJ | TIMEY}, // 85
	{Token: "summer", Features: ADJ | TIMEY}, // 86
	{Token: "autumn", Features: ADJ | TIMEY}, // 87
	{Token: "winter", Features: ADJ | TIMEY}, // 88
	{Token: "broken", Features: ADJ}, // 89
	{Token: "thick", Features: ADJ}, // 90
	{Token: "thin", Features: ADJ}, // 91
	{Token: "little", Features: ADJ}, // 92
	{Token: "big", Features: ADJ}, // 93
	{Token: "parched", Features: ADJ | AMB}, // 94
	{Token: "withered", Features: ADJ | AMB}, // 95
	{Token: "worn", Features: ADJ | AMB}, // 96
	{Token: "soft", Features: ADJ}, // 97
	{Token: "bitter", Features: ADJ}, // 98
	{Token: "bright", Features: ADJ}, // 99
	{Token: "brilliant", Features: ADJ}, // 100
	{Token: "cold", Features: ADJ}, // 101
	{Token: "cool", Features: ADJ}, // 102
	{Token: "crimson", Features: ADJ}, // 103
	{Token: "dark", Features: ADJ}, // 104
	{Token: "frozen", Features: ADJ}, // 105
	{Token: "grey", Features: ADJ}, // 106
	{Token: "hard", Features: ADJ}, // 107
	{Token: "hot", Features: ADJ}, // 108
	{Token: "scarlet", Features: ADJ}, // 109
	{Token: "shallow", Features: ADJ}, // 110
	{Token: "sharp", Features: ADJ}, // 111
	{Token: "warm", Features: ADJ}, // 112
	{Token: "close", Features: ADJ}, // 113
	{Token: "calm", Features: ADJ}, // 114
	{Token: "cruel", Features: ADJ}, // 115
	{Token: "drowned", Features: ADJ}, // 116
	{Token: "dull", Features: ADJ}, // 117
	{Token: "dead", Features: ADJ}, // 118
	{Token: "sick", Features: ADJ}, // 119
	{Token: "deep", Features: ADJ}, // 120
	{Token: "fast", Features: ADJ}, // 121
	{Token: "fleeting", Features: ADJ}, // 122
	{Token: "fragrant", Features: ADJ}, // 123
	{Token: "fresh", Features: ADJ}, // 124
	{Token: "loud", Features: ADJ}, // 125
	{Token: "moonlit", Features: ADJ | AMB}, // 126
	{Token: "sacred", Features: ADJ}, // 127
	{Token: "slow", Features: ADJ}, // 128
	{Token: "traveller", Features: NS}, // 129
	{Token: "poet", Features: NS}, // 130
	{Token: "beggar", Features: NS}, // 131
	{Token: "monk", Features: NS}, // 132
	{Token: "warrior", Features: NS}, // 133
	{Token: "wife", Features: NS}, // 134
	{Token: "courtesan", Features: NS}, // 135
	{Token: "dancer", Features: NS}, // 136
	{Token: "daemon", Features: NS}, // 137
	{Token: "frog", Features: NS}, // 138
	{Token: "hawks", Features: NPL}, // 139
	{Token: "larks", Features: NPL}, // 140
	{Token: "cranes", Features: NPL}, // 141
	{Token: "crows", Features: NPL}, // 142
	{Token: "ducks", Features: NPL}, // 143
	{Token: "birds", Features: NPL}, // 144
	{Token: "skylark", Features: NS}, // 145
	{Token: "sparrows", Features: NPL}, // 146
	{Token: "minnows", Features: NPL}, // 147
	{Token: "snakes", Features: NPL}, // 148
	{Token: "dog", Features: NS}, // 149
	{Token: "monkeys", Features: NPL}, // 150
	{Token: "cats", Features: NPL}, // 151
	{Token: "cuckoos", Features: NPL}, // 152
	{Token: "mice", Features: NPL}, // 153
	{Token: "dragonfly", Features: NS}, // 154
	{Token: "butterfly", Features: NS}, // 155
	{Token: "firefly", Features: NS}, // 156
	{Token: "grasshopper", Features: NS}, // 157
	{Token: "mosquitos", Features: NPL}, // 158
	{Token: "trees", Features: NPL | IN | AT}, // 159
	{Token: "roses", Features: NPL}, // 160
	{Token: "cherries", Features: NPL}, // 161
	{Token: "flowers", Features: NPL}, // 162
	{Token: "lotuses", Features: NPL}, // 163
	{Token: "plums", Features: NPL}, // 164
	{Token: "poppies", Features: NPL}, // 165
	{Token: "violets", Features: NPL}, // 166
	{Token: "oaks", Features: NPL | AT}, // 167
	{Token: "pines", Features: NPL | AT}, // 168
	{Token: "chestnuts", Features: NPL}, // 169
	{Token: "clovers", Features: NPL}, // 170
	{Token: "leaves", Features: NPL}, // 171
	{Token: "petals", Features: NPL}, // 172
	{Token: "thorns", Features: NPL}, // 173
	{Token: "blossoms", Features: NPL}, // 174
	{Token: "vines", Features: NPL}, // 175
	{Token: "willows", Features: NPL}, // 176
	{Token: "mountain", Features: NS | AT | ON}, // 177
	{Token: "moor", Features: NS | AT | ON | IN}, // 178
	{Token: "sea", Features: NS | AT | ON | IN}, // 179
	{Token: "shadow", Features: NS | IN}, // 180
	{Token: "skies", Features: NPL | IN}, // 181
	{Token: "moon", Features: NS}, // 182
	{Token: "star", Features: NS}, // 183
	{Token: "stone", Features: NS}, // 184
	{Token: "cloud", Features: NS}, // 185
	{Token: "bridge", Features: NS | ON | AT}, // 186
	{Token: "gate", Features: NS | AT}, // 187
	{Token: "temple", Features: NS | IN | AT}, // 188
	{Token: "hovel", Features: NS | IN | AT}, // 189
	{Token: "forest", Features: NS | IN | AT}, // 190
	{Token: "grave", Features: NS | IN | AT | ON}, // 191
	{Token: "stream", Features: NS | IN | AT | ON}, // 192
	{Token: "pond", Features: NS | IN | AT | ON}, // 193
	{Token: "island", Features: NS | ON | AT}, // 194
	{Token: "bell", Features: NS}, // 195
	{Token: "boat", Features: NS | IN | ON}, // 196
	{Token: "sailboat", Features: NS | IN | ON}, // 197
	{Token: "bon fire", Features: NS | AT}, // 198
	{Token: "straw mat", Features: NS | ON}, // 199
	{Token: "cup", Features: NS | IN}, // 200
	{Token: "nest", Features: NS | IN}, // 201
	{Token: "sun", Features: NS | IN}, // 202
	{Token: "village", Features: NS | IN}, // 203
	{Token: "tomb", Features: NS | IN | AT}, // 204
	{Token: "raindrop", Features: NS | IN}, // 205
	{Token: "wave", Features: NS | IN}, // 206
	{Token: "wind", Features: NS | IN}, // 207
	{Token: "tide", Features: NS | IN | AT}, // 208
	{Token: "fan", Features: NS}, // 209
	{Token: "hat", Features: NS}, // 210
	{Token: "sandal", Features: NS}, // 211
	{Token: "shroud", Features: NS}, // 212
	{Token: "pole", Features: NS}, // 213
	{Token: "water", Features: ON | IN | MASS | AMB}, // 214
	{Token: "air", Features: ON | IN | MASS | AMB}, // 215
	{Token: "mud", Features: ON | IN | MASS | AMB}, // 216
	{Token: "rain", Features: IN | MASS | AMB}, // 217
	{Token: "thunder", Features: IN | MASS | AMB}, // 218
	{Token: "ice", Features: ON | IN | MASS | AMB}, // 219
	{Token: "snow", Features: ON | IN | MASS | AMB}, // 220
	{Token: "salt", Features: ON | IN | MASS}, // 221
	{Token: "hail", Features: IN | MASS | AMB}, // 222
	{Token: "mist", Features: IN | MASS | AMB}, // 223
	{Token: "dew", Features: IN | MASS | AMB}, // 224
	{Token: "foam", Features: IN | MASS | AMB}, // 225
	{Token: "frost", Features: IN | MASS | AMB}, // 226
	{Token: "smoke", Features: IN | MASS | AMB}, // 227
	{Token: "twilight", Features: IN | AT | MASS | AMB}, // 228
	{Token: "earth", Features: ON | IN | MASS}, // 229
	{Token: "grass", Features: ON | IN | MASS}, // 230
	{Token: "bamboo", Features: MASS}, // 231
	{Token: "gold", Features: MASS}, // 232
	{Token: "grain", Features: MASS}, // 233
	{Token: "rice", Features: MASS}, // 234
	{Token: "tea", Features: IN | MASS}, // 235
	{Token: "light", Features: IN | MASS | AMB}, // 236
	{Token: "darkness", Features: IN | MASS | AMB}, // 237
	{Token: "firelight", Features: IN | MASS | AMB}, // 238
	{Token: "sunlight", Features: IN | MASS | AMB}, // 239
	{Token: "sunshine", Features: IN | MASS | AMB}, // 240
	{Token: "journey", Features: NS | ON}, // 241
	{Token: "serenity", Features: MASS}, // 242
	{Token: "dusk", Features: TIMED}, // 243
	{Token: "glow", Features: NS}, // 244
	{Token: "scent", Features: NS}, // 245
	{Token: "sound", Features: NS}, // 246
	{Token: "silence", Features: NS}, // 247
	{Token: "voice", Features: NS}, // 248
	{Token: "day", Features: NS | TIMED}, // 249
	{Token: "night", Features: NS | TIMED}, // 250
	{Token: "sunrise", Features: NS | TIMED}, // 251
	{Token: "sunset", Features: NS | TIMED}, // 252
	{Token: "midnight", Features: NS | TIMED}, // 253
	{Token: "equinox", Features: NS | TIMEY}, // 254
	{Token: "noon", Features: NS | TIMED}, // 255
}

// Frame is the set of case frames for the semantic grammar, inspired by
// Basho. A haiku's 16-byte token sequence is valid iff it unifies with at
// least one frame (see grammar.Syntax): slot by slot, a zero frame slot
// requires the token to be the zero-feature terminator, an XLIT slot
// requires an exact dictionary index, and any other slot requires the
// token's Features to intersect the slot mask.
var Frame = [NFrames][MaxH]uint32{
	{ // on a quiet moor / raindrops / fall
		PREP, ADJ, MASS, slotNL,
		NPL, slotNL,
		INF | ING,
	},
	{
		PREP, MASS, slotNL,
		ADJ, NPL, slotNL,
		INF | ING,
	},
	{
		PREP, TIMED, slotNL,
		ADJ, NPL, slotNL,
		INF | ING,
	},
	{
		PREP, TIMED, slotNL,
		slotA, NS, slotNL,
		ING,
	},
	{ // morning mist / on a worn field-- / red
		TIME, AMB, slotNL,
		PREP, slotA, ADJ, NS, slotMD, slotNL,
		ADJ | ING,
	},
	{
		TIME, AMB, slotNL,
		ADJ, MASS, slotNL,
		ING,
	},
	{ // morning mist / remains: / smoke
		TIME, MASS, slotNL,
		INF, slotS, slotCO, slotNL,
		AMB,
	},
	{ // arriving at a parched gate / mist rises-- / a moonlit sandal
		ING, PREP, slotA, ADJ, NS, slotNL,
		MASS, ING, slotMD, slotNL,
		slotA, ADJ, NS,
	},
	{ // pausing under a hot tomb / firelight shining-- / a beautiful bon fire
		ING, PREP, TIME, MASS, slotNL,
		MASS, ING, slotMD, slotNL,
		slotA, ADJ, NS,
	},
	{ // a wife / in afternoon mist-- / sad
		slotA, NS, slotNL,
		PREP, TIMED, MASS, slotMD, slotNL,
		ADJ,
	},
}
