package lexicon

// Built-in tables. These are the frozen defaults compiled into the binary;
// overlay files in LEXICON_DIR can extend the gazetteer and misspelling map
// but the trigger and pattern tables only change with a release.

// defaultGazetteer lists medication names the matcher recognises, lowercase,
// in match-priority order. Common UK prescription and over-the-counter names.
var defaultGazetteer = []string{
	"amoxicillin",
	"paracetamol",
	"ibuprofen",
	"aspirin",
	"omeprazole",
	"lansoprazole",
	"atorvastatin",
	"simvastatin",
	"metformin",
	"ramipril",
	"amlodipine",
	"lisinopril",
	"bisoprolol",
	"salbutamol",
	"beclometasone",
	"prednisolone",
	"codeine",
	"co-codamol",
	"naproxen",
	"sertraline",
	"citalopram",
	"fluoxetine",
	"amitriptyline",
	"gabapentin",
	"pregabalin",
	"warfarin",
	"apixaban",
	"clopidogrel",
	"levothyroxine",
	"doxycycline",
	"flucloxacillin",
	"clarithromycin",
	"erythromycin",
	"trimethoprim",
	"nitrofurantoin",
	"penicillin",
	"metronidazole",
	"cetirizine",
	"loratadine",
	"fexofenadine",
	"furosemide",
	"bendroflumethiazide",
	"tramadol",
	"morphine",
	"diazepam",
	"zopiclone",
	"folic acid",
	"ferrous sulfate",
}

// defaultMisspellings are literal transcription errors seen in real speech-to-
// text output, checked before fuzzy scoring. Keys are matched against the
// whitespace-stripped sentence, so an inserted space ("a moxosilin") collapses
// into the key.
var defaultMisspellings = []Misspelling{
	{Wrong: "amoxosilin", Canonical: "amoxicillin"},
	{Wrong: "moxosilin", Canonical: "amoxicillin"},
	{Wrong: "amoxicilin", Canonical: "amoxicillin"},
	{Wrong: "amoxycillin", Canonical: "amoxicillin"},
	{Wrong: "parasetamol", Canonical: "paracetamol"},
	{Wrong: "paracetemol", Canonical: "paracetamol"},
	{Wrong: "ibuprofin", Canonical: "ibuprofen"},
	{Wrong: "omeprazol", Canonical: "omeprazole"},
	{Wrong: "atorvastatine", Canonical: "atorvastatin"},
	{Wrong: "setraline", Canonical: "sertraline"},
}

var defaultMedicationTriggers = []string{
	"prescrib",
	"medication",
	"medicine",
	"tablet",
	"capsule",
	"inhaler",
	"antibiotic",
	"painkiller",
	"course of",
	"dose",
	"take",
	"taking",
	"drops",
	"ointment",
	"cream",
}

var defaultTestTriggers = []TestTrigger{
	{Phrase: "blood test", Type: "blood test"},
	{Phrase: "bloods", Type: "blood test"},
	{Phrase: "urine test", Type: "urine test"},
	{Phrase: "urine sample", Type: "urine test"},
	{Phrase: "x-ray", Type: "X-ray"},
	{Phrase: "x ray", Type: "X-ray"},
	{Phrase: "xray", Type: "X-ray"},
	{Phrase: "mri", Type: "MRI scan"},
	{Phrase: "ct scan", Type: "CT scan"},
	{Phrase: "ultrasound", Type: "ultrasound scan"},
	{Phrase: "ecg", Type: "ECG"},
	{Phrase: "swab", Type: "swab"},
	{Phrase: "biopsy", Type: "biopsy"},
	{Phrase: "physio", Type: "physiotherapy referral"},
	{Phrase: "refer", Type: "referral"},
	{Phrase: "specialist", Type: "specialist referral"},
	{Phrase: "scan", Type: "scan"},
	{Phrase: "test", Type: "test"},
}

var defaultFollowUpTriggers = []string{
	"follow up",
	"follow-up",
	"come back",
	"come and see",
	"pop back",
	"check-up",
	"check up",
	"review",
	"book an appointment",
	"make an appointment",
	"see you again",
	"see how you",
	"return",
}

var defaultSafetyTriggers = []string{
	"if you",
	"should you",
	"if it",
	"if there",
	"if the",
	"watch out for",
	"look out for",
	"seek",
	"contact",
	"call",
	"go to",
	"go straight to",
	"get worse",
	"gets worse",
	"worsens",
	"develop",
}

var defaultSafetyConditions = []string{
	"chest pain",
	"short of breath",
	"shortness of breath",
	"breathless",
	"difficulty breathing",
	"trouble breathing",
	"rash",
	"swelling",
	"swollen",
	"high temperature",
	"fever",
	"bleeding",
	"blood in",
	"dizzy",
	"dizziness",
	"faint",
	"vomiting",
	"severe",
	"unbearable",
	"collapse",
	"confusion",
	"numbness",
	"weakness",
}

// Emergency keywords qualify a sentence as a safety warning on their own,
// without a separate trigger phrase.
var defaultEmergencyKeywords = []string{
	"a&e",
	"999",
	"112",
	"ambulance",
	"emergency",
	"accident and emergency",
}

var defaultLifestyleKeywords = []string{
	"diet",
	"exercise",
	"smoking",
	"smoke",
	"alcohol",
	"weight",
	"sleep",
	"stress",
	"rest",
	"fluids",
	"hydrated",
	"healthy",
	"walking",
	"fresh air",
	"lifestyle",
	"caffeine",
	"fatty food",
	"spicy food",
}

var defaultReassuranceKeywords = []string{
	"nothing to worry about",
	"no need to worry",
	"nothing serious",
	"quite common",
	"very common",
	"perfectly normal",
	"completely normal",
	"should settle",
	"should improve",
	"should clear up",
	"good sign",
}

var defaultUrgencyIndicators = []string{
	"urgently",
	"urgent",
	"as soon as possible",
	"asap",
	"straight away",
	"right away",
	"immediately",
	"within 24 hours",
	"within the next few days",
	"today",
	"this week",
	"non-urgent",
	"routine",
}

// dosagePattern matches a number followed by a unit. Long unit names come
// before their abbreviations so the full spoken form is captured.
const dosagePattern = `\d+(?:\.\d+)?\s*(?:milligrams?|micrograms?|grams?|millilitres?|milliliters?|tablets?|pills?|capsules?|puffs?|sprays?|drops?|units?|mg|mcg|ml|g)\b`

// defaultFrequencyPhrases are checked, in order, before the parametric
// frequency patterns.
var defaultFrequencyPhrases = []string{
	"once a day",
	"twice a day",
	"three times a day",
	"four times a day",
	"once daily",
	"twice daily",
	"three times daily",
	"four times daily",
	"every morning",
	"every evening",
	"every night",
	"at bedtime",
	"at night",
	"in the morning",
	"before meals",
	"after meals",
	"with meals",
	"as needed",
	"when required",
	"as required",
	"when necessary",
}

var frequencyPatterns = []string{
	`every \d+ hours?`,
	`every (?:four|six|eight|twelve) hours`,
	`\d+ times? a day`,
}

// durationPatterns, first match wins.
var durationPatterns = []string{
	`for \d+ (?:days?|weeks?|months?)`,
	`for (?:one|two|three|four|five|six|seven|eight|nine|ten|fourteen) (?:days?|weeks?|months?)`,
	`for (?:a|another) (?:few days|day|week|fortnight|month)`,
	`until (?:the course is |it is |it's )?finished`,
	`until you feel better`,
	`long term`,
}

var defaultSpecialInstructionPhrases = []string{
	"with or after food",
	"with food",
	"after food",
	"before food",
	"on an empty stomach",
	"with plenty of water",
	"with water",
	"avoid alcohol",
	"no alcohol",
	"do not drive",
	"don't drive",
	"complete the course",
	"finish the course",
	"complete the full course",
	"swallow whole",
	"do not crush",
	"do not chew",
	"at the same time each day",
}

// timeframePatterns for follow-up. Unlike every other field extractor, the
// follow-up extractor keeps the LAST pattern in this list that matches.
var timeframePatterns = []string{
	`in \d+ (?:days?|weeks?|months?)`,
	`in (?:a|one|two|three|four|five|six|seven|eight|nine|ten) (?:days?|weeks?|months?)`,
	`in (?:a )?couple of (?:days|weeks)`,
	`in a few (?:days|weeks)`,
	`within \d+ (?:days?|weeks?|months?)`,
	`within (?:a|one|two|three|four) (?:days?|weeks?|months?)`,
	`next (?:week|month|monday|tuesday|wednesday|thursday|friday)`,
	`tomorrow`,
}

var defaultLocationCascade = []LocationRule{
	{Keywords: []string{"reception"}, Label: "reception"},
	{Keywords: []string{"online"}, Label: "online"},
	{Keywords: []string{"phone", "call", "ring"}, Label: "phone"},
	{Keywords: []string{"gp", "surgery", "practice", "clinic"}, Label: "GP surgery"},
}
