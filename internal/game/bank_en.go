package game

import "github.com/karim/quizrush/internal/models"

var mathPuzzlesEN = map[Tier][]models.Puzzle{
	TierBeginner: {
		{Question: "What is 1 + 1?", Answer: "2"},
		{Question: "What is 3 + 2?", Answer: "5"},
		{Question: "What is 5 - 1?", Answer: "4"},
		{Question: "What is 2 × 2?", Answer: "4"},
		{Question: "What is 6 ÷ 2?", Answer: "3"},
		{Question: "What is 4 + 1?", Answer: "5"},
	},
	TierEasy: {
		{Question: "What is 5 + 3?", Answer: "8"},
		{Question: "What is 10 - 4?", Answer: "6"},
		{Question: "What is 6 × 2?", Answer: "12"},
		{Question: "What is 15 ÷ 3?", Answer: "5"},
		{Question: "What is 7 + 8?", Answer: "15"},
		{Question: "What is 20 - 9?", Answer: "11"},
		{Question: "What is 4 × 5?", Answer: "20"},
		{Question: "What is 28 ÷ 4?", Answer: "7"},
	},
	TierMedium: {
		{Question: "What is 47 + 35?", Answer: "82"},
		{Question: "What is 93 - 28?", Answer: "65"},
		{Question: "What is 12 × 9?", Answer: "108"},
		{Question: "What is 144 ÷ 12?", Answer: "12"},
		{Question: "What is 68 + 47?", Answer: "115"},
		{Question: "What is 125 - 39?", Answer: "86"},
		{Question: "What is 15 × 7?", Answer: "105"},
		{Question: "What is 180 ÷ 15?", Answer: "12"},
	},
	TierHard: {
		{Question: "What is 147 + 258?", Answer: "405"},
		{Question: "What is 352 - 167?", Answer: "185"},
		{Question: "What is 17 × 13?", Answer: "221"},
		{Question: "What is 360 ÷ 15?", Answer: "24"},
		{Question: "What is 289 + 365?", Answer: "654"},
		{Question: "What is 480 - 235?", Answer: "245"},
		{Question: "What is 19 × 16?", Answer: "304"},
		{Question: "What is 420 ÷ 20?", Answer: "21"},
	},
	TierExpert: {
		{Question: "What is 789 + 456 + 234?", Answer: "1479"},
		{Question: "What is 1567 - 894?", Answer: "673"},
		{Question: "What is 47 × 29?", Answer: "1363"},
		{Question: "What is 984 ÷ 24?", Answer: "41"},
		{Question: "What is 2³ × 5?", Answer: "40"},
		{Question: "What is √144?", Answer: "12"},
		{Question: "What is 34 × 27?", Answer: "918"},
		{Question: "What is 1260 ÷ 36?", Answer: "35"},
	},
}

var sciencePuzzlesEN = map[Tier][]models.Puzzle{
	TierBeginner: {
		{
			Question: "What color is the sun?",
			Options:  []string{"Yellow", "Red", "Blue", "Green"},
			Answer:   "Yellow",
		},
		{
			Question: "How many legs does a cat have?",
			Options:  []string{"2", "4", "6", "8"},
			Answer:   "4",
		},
		{
			Question: "What shape is the Earth?",
			Options:  []string{"Round", "Square", "Triangle", "Rectangle"},
			Answer:   "Round",
		},
	},
	TierEasy: {
		{
			Question: "What is the closest planet to the Sun?",
			Options:  []string{"Mercury", "Venus", "Earth", "Mars"},
			Answer:   "Mercury",
		},
		{
			Question: "How many planets are in our solar system?",
			Options:  []string{"7", "8", "9", "10"},
			Answer:   "8",
		},
		{
			Question: "What gas do we breathe in?",
			Options:  []string{"Oxygen", "Nitrogen", "Carbon Dioxide", "Hydrogen"},
			Answer:   "Oxygen",
		},
		{
			Question: "What is the largest organ in the human body?",
			Options:  []string{"Skin", "Liver", "Heart", "Brain"},
			Answer:   "Skin",
		},
		{
			Question: "What is the process of water turning into vapor called?",
			Options:  []string{"Evaporation", "Condensation", "Freezing", "Melting"},
			Answer:   "Evaporation",
		},
	},
	TierMedium: {
		{
			Question: "What is the smallest bone in the human body?",
			Options:  []string{"Stapes in ear", "Wrist bone", "Rib bone", "Finger bone"},
			Answer:   "Stapes in ear",
		},
		{
			Question: "In which layer of the atmosphere is the ozone layer?",
			Options:  []string{"Stratosphere", "Troposphere", "Mesosphere", "Thermosphere"},
			Answer:   "Stratosphere",
		},
		{
			Question: "What acid is found in the stomach?",
			Options:  []string{"Hydrochloric acid", "Sulfuric acid", "Nitric acid", "Phosphoric acid"},
			Answer:   "Hydrochloric acid",
		},
	},
	TierHard: {
		{
			Question: "What is the most abundant element in the universe?",
			Options:  []string{"Hydrogen", "Helium", "Oxygen", "Carbon"},
			Answer:   "Hydrogen",
		},
		{
			Question: "How many chromosomes are in a human cell?",
			Options:  []string{"23", "46", "48", "52"},
			Answer:   "46",
		},
		{
			Question: "What is the approximate speed of light in a vacuum?",
			Options:  []string{"300,000 km/s", "150,000 km/s", "450,000 km/s", "600,000 km/s"},
			Answer:   "300,000 km/s",
		},
		{
			Question: "What is the chemical symbol for gold?",
			Options:  []string{"Au", "Ag", "Go", "Gd"},
			Answer:   "Au",
		},
		{
			Question: "What is the outermost layer of Earth's atmosphere?",
			Options:  []string{"Exosphere", "Stratosphere", "Troposphere", "Mesosphere"},
			Answer:   "Exosphere",
		},
	},
	TierExpert: {
		{
			Question: "What is Avogadro's number approximately?",
			Options:  []string{"6.02 × 10²³", "3.14 × 10²³", "9.11 × 10²³", "1.66 × 10²³"},
			Answer:   "6.02 × 10²³",
		},
		{
			Question: "Which particle carries the electromagnetic force?",
			Options:  []string{"Photon", "Proton", "Neutron", "Electron"},
			Answer:   "Photon",
		},
		{
			Question: "In which organelle does photosynthesis occur?",
			Options:  []string{"Chloroplast", "Mitochondria", "Nucleus", "Endoplasmic reticulum"},
			Answer:   "Chloroplast",
		},
	},
}

var wordPuzzlesEN = map[Tier][]models.Puzzle{
	TierBeginner: {
		{Question: "Unscramble: TAC", Answer: "CAT", Hint: "Pet animal"},
		{Question: "What comes next: 1, 2, 3, ?", Answer: "4", Hint: "Next number"},
		{Question: "Complete: Red, Blue, ?", Answer: "GREEN", Hint: "Another color"},
	},
	TierEasy: {
		{Question: "Unscramble: TUNES", Answer: "UNSET", Hint: "To undo a setting"},
		{Question: "What comes next: 2, 4, 6, 8, ?", Answer: "10", Hint: "Even numbers"},
		{Question: "Riddle: What has hands but cannot clap?", Answer: "CLOCK", Hint: "Tells time"},
		{Question: "Unscramble: EARTH", Answer: "HEART", Hint: "Organ that pumps blood"},
		{Question: "What comes next: 1, 3, 5, 7, ?", Answer: "9", Hint: "Odd numbers"},
	},
	TierMedium: {
		{Question: "Unscramble: TEACHER", Answer: "CHEATER", Hint: "Someone who breaks rules"},
		{Question: "What comes next: 1, 4, 9, 16, ?", Answer: "25", Hint: "Perfect squares"},
		{Question: "Riddle: What gets wetter as it dries?", Answer: "TOWEL", Hint: "Used after shower"},
	},
	TierHard: {
		{Question: "Unscramble: LISTEN", Answer: "SILENT", Hint: "Without sound"},
		{Question: "What comes next: 1, 1, 2, 3, 5, 8, ?", Answer: "13", Hint: "Fibonacci sequence"},
		{Question: "Riddle: What has cities but no houses, forests but no trees?", Answer: "MAP", Hint: "Shows geography"},
		{Question: "Unscramble: DORMITORY", Answer: "DIRTY ROOM", Hint: "Not clean space"},
		{Question: "What comes next: 2, 6, 12, 20, 30, ?", Answer: "42", Hint: "Difference increases"},
	},
	TierExpert: {
		{Question: "Unscramble: THE MORSE CODE", Answer: "HERE COME DOTS", Hint: "Communication system"},
		{Question: "What comes next: 1, 8, 27, 64, ?", Answer: "125", Hint: "Perfect cubes"},
		{Question: "Riddle: I am the first to be made and the last to be broken. What am I?", Answer: "PROMISE", Hint: "A commitment"},
	},
}
