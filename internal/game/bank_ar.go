package game

import "github.com/karim/quizrush/internal/models"

var mathPuzzlesAR = map[Tier][]models.Puzzle{
	TierBeginner: {
		{Question: "ما هو ١ + ١؟", Answer: "٢"},
		{Question: "ما هو ٣ + ٢؟", Answer: "٥"},
		{Question: "ما هو ٥ - ١؟", Answer: "٤"},
		{Question: "ما هو ٢ × ٢؟", Answer: "٤"},
		{Question: "ما هو ٦ ÷ ٢؟", Answer: "٣"},
		{Question: "ما هو ٤ + ١؟", Answer: "٥"},
	},
	TierEasy: {
		{Question: "ما هو ٥ + ٣؟", Answer: "٨"},
		{Question: "ما هو ١٠ - ٤؟", Answer: "٦"},
		{Question: "ما هو ٦ × ٢؟", Answer: "١٢"},
		{Question: "ما هو ١٥ ÷ ٣؟", Answer: "٥"},
		{Question: "ما هو ٧ + ٨؟", Answer: "١٥"},
		{Question: "ما هو ٢٠ - ٩؟", Answer: "١١"},
		{Question: "ما هو ٤ × ٥؟", Answer: "٢٠"},
		{Question: "ما هو ٢٨ ÷ ٤؟", Answer: "٧"},
	},
	TierMedium: {
		{Question: "ما هو ٤٧ + ٣٥؟", Answer: "٨٢"},
		{Question: "ما هو ٩٣ - ٢٨؟", Answer: "٦٥"},
		{Question: "ما هو ١٢ × ٩؟", Answer: "١٠٨"},
		{Question: "ما هو ١٤٤ ÷ ١٢؟", Answer: "١٢"},
		{Question: "ما هو ٦٨ + ٤٧؟", Answer: "١١٥"},
		{Question: "ما هو ١٢٥ - ٣٩؟", Answer: "٨٦"},
		{Question: "ما هو ١٥ × ٧؟", Answer: "١٠٥"},
		{Question: "ما هو ١٨٠ ÷ ١٥؟", Answer: "١٢"},
	},
	TierHard: {
		{Question: "ما هو ١٤٧ + ٢٥٨؟", Answer: "٤٠٥"},
		{Question: "ما هو ٣٥٢ - ١٦٧؟", Answer: "١٨٥"},
		{Question: "ما هو ١٧ × ١٣؟", Answer: "٢٢١"},
		{Question: "ما هو ٣٦٠ ÷ ١٥؟", Answer: "٢٤"},
		{Question: "ما هو ٢٨٩ + ٣٦٥؟", Answer: "٦٥٤"},
		{Question: "ما هو ٤٨٠ - ٢٣٥؟", Answer: "٢٤٥"},
		{Question: "ما هو ١٩ × ١٦؟", Answer: "٣٠٤"},
		{Question: "ما هو ٤٢٠ ÷ ٢٠؟", Answer: "٢١"},
	},
	TierExpert: {
		{Question: "ما هو ٧٨٩ + ٤٥٦ + ٢٣٤؟", Answer: "١٤٧٩"},
		{Question: "ما هو ١٥٦٧ - ٨٩٤؟", Answer: "٦٧٣"},
		{Question: "ما هو ٤٧ × ٢٩؟", Answer: "١٣٦٣"},
		{Question: "ما هو ٩٨٤ ÷ ٢٤؟", Answer: "٤١"},
		{Question: "ما هو ٢³ × ٥؟", Answer: "٤٠"},
		{Question: "ما هو جذر ١٤٤؟", Answer: "١٢"},
		{Question: "ما هو ٣٤ × ٢٧؟", Answer: "٩١٨"},
		{Question: "ما هو ١٢٦٠ ÷ ٣٦؟", Answer: "٣٥"},
	},
}

var sciencePuzzlesAR = map[Tier][]models.Puzzle{
	TierBeginner: {
		{
			Question: "ما لون الشمس؟",
			Options:  []string{"أصفر", "أحمر", "أزرق", "أخضر"},
			Answer:   "أصفر",
		},
		{
			Question: "كم عدد أرجل القطة؟",
			Options:  []string{"٢", "٤", "٦", "٨"},
			Answer:   "٤",
		},
		{
			Question: "ما هو شكل الأرض؟",
			Options:  []string{"دائري", "مربع", "مثلث", "مستطيل"},
			Answer:   "دائري",
		},
	},
	TierEasy: {
		{
			Question: "ما هو الكوكب الأقرب إلى الشمس؟",
			Options:  []string{"عطارد", "الزهرة", "الأرض", "المريخ"},
			Answer:   "عطارد",
		},
		{
			Question: "كم عدد الكواكب في المجموعة الشمسية؟",
			Options:  []string{"٧", "٨", "٩", "١٠"},
			Answer:   "٨",
		},
		{
			Question: "ما هو الغاز الذي نتنفسه؟",
			Options:  []string{"الأكسجين", "النيتروجين", "ثاني أكسيد الكربون", "الهيدروجين"},
			Answer:   "الأكسجين",
		},
		{
			Question: "ما هو أكبر عضو في جسم الإنسان؟",
			Options:  []string{"الجلد", "الكبد", "القلب", "الدماغ"},
			Answer:   "الجلد",
		},
		{
			Question: "ماذا تسمى عملية تحول الماء إلى بخار؟",
			Options:  []string{"التبخر", "التكثف", "التجمد", "الانصهار"},
			Answer:   "التبخر",
		},
	},
	TierMedium: {
		{
			Question: "ما هو أصغر عظم في جسم الإنسان؟",
			Options:  []string{"الركاب في الأذن", "عظم الرسغ", "عظم الضلع", "عظم الإصبع"},
			Answer:   "الركاب في الأذن",
		},
		{
			Question: "في أي طبقة من الغلاف الجوي توجد طبقة الأوزون؟",
			Options:  []string{"الستراتوسفير", "التروبوسفير", "الميزوسفير", "الثيرموسفير"},
			Answer:   "الستراتوسفير",
		},
		{
			Question: "ما هو الحمض الموجود في المعدة؟",
			Options:  []string{"حمض الهيدروكلوريك", "حمض الكبريتيك", "حمض النيتريك", "حمض الفوسفوريك"},
			Answer:   "حمض الهيدروكلوريك",
		},
	},
	TierHard: {
		{
			Question: "ما هو العنصر الأكثر وفرة في الكون؟",
			Options:  []string{"الهيدروجين", "الهيليوم", "الأكسجين", "الكربون"},
			Answer:   "الهيدروجين",
		},
		{
			Question: "كم عدد الكروموسومات في الخلية البشرية؟",
			Options:  []string{"٢٣", "٤٦", "٤٨", "٥٢"},
			Answer:   "٤٦",
		},
		{
			Question: "ما هي سرعة الضوء في الفراغ تقريباً؟",
			Options:  []string{"٣٠٠،٠٠٠ كم/ثانية", "١٥٠،٠٠٠ كم/ثانية", "٤٥٠،٠٠٠ كم/ثانية", "٦٠٠،٠٠٠ كم/ثانية"},
			Answer:   "٣٠٠،٠٠٠ كم/ثانية",
		},
		{
			Question: "ما هو الرمز الكيميائي للذهب؟",
			Options:  []string{"Au", "Ag", "Go", "Gd"},
			Answer:   "Au",
		},
		{
			Question: "ما هي الطبقة الخارجية من الغلاف الجوي للأرض؟",
			Options:  []string{"الإكسوسفير", "الستراتوسفير", "التروبوسفير", "الميزوسفير"},
			Answer:   "الإكسوسفير",
		},
	},
	TierExpert: {
		{
			Question: "ما هو عدد أفوجادرو تقريباً؟",
			Options:  []string{"٦.٠٢ × ١٠²³", "٣.١٤ × ١٠²³", "٩.١١ × ١٠²³", "١.٦٦ × ١٠²³"},
			Answer:   "٦.٠٢ × ١٠²³",
		},
		{
			Question: "ما هو الجسيم المسؤول عن نقل القوة الكهرومغناطيسية؟",
			Options:  []string{"الفوتون", "البروتون", "النيوترون", "الإلكترون"},
			Answer:   "الفوتون",
		},
		{
			Question: "في أي عضية تحدث عملية البناء الضوئي؟",
			Options:  []string{"البلاستيدات الخضراء", "الميتوكوندريا", "النواة", "الشبكة الإندوبلازمية"},
			Answer:   "البلاستيدات الخضراء",
		},
	},
}

var wordPuzzlesAR = map[Tier][]models.Puzzle{
	TierBeginner: {
		{Question: "أعيد ترتيب الحروف: ر م ق", Answer: "قمر", Hint: "في السماء ليلاً"},
		{Question: "ما يأتي بعد: ١، ٢، ٣، ؟", Answer: "٤", Hint: "الرقم التالي"},
		{Question: "أكمل: أحمر، أزرق، ؟", Answer: "أخضر", Hint: "لون آخر"},
	},
	TierEasy: {
		{Question: "أعيد ترتيب الحروف: س م ش", Answer: "شمس", Hint: "نجم في السماء"},
		{Question: "ما يأتي بعد: ٢، ٤، ٦، ٨، ؟", Answer: "١٠", Hint: "أرقام زوجية"},
		{Question: "حزر اللغز: أبيض من الثلج وأسود من الليل، يكتب ولا يقرأ", Answer: "القلم", Hint: "أداة للكتابة"},
		{Question: "أعيد ترتيب الحروف: ل م ق", Answer: "قلم", Hint: "للكتابة"},
		{Question: "ما يأتي بعد: ١، ٣، ٥، ٧، ؟", Answer: "٩", Hint: "أرقام فردية"},
	},
	TierMedium: {
		{Question: "أعيد ترتيب الحروف: ك ت ا ب", Answer: "كتاب", Hint: "للقراءة"},
		{Question: "ما يأتي بعد: ١، ٤، ٩، ١٦، ؟", Answer: "٢٥", Hint: "مربعات الأرقام"},
		{Question: "حزر اللغز: أكون في البحر ولكنني لست ماءً، أكون في السماء ولكنني لست هواءً", Answer: "السحاب", Hint: "يحمل المطر"},
	},
	TierHard: {
		{Question: "أعيد ترتيب الحروف: م ل ع ل م", Answer: "معلم", Hint: "مهنة التدريس"},
		{Question: "ما يأتي بعد: ١، ١، ٢، ٣، ٥، ٨، ؟", Answer: "١٣", Hint: "متتالية فيبوناتشي"},
		{Question: "حزر اللغز: له رأس ولا عين له، ولها عين ولا رأس لها", Answer: "الدبوس والإبرة", Hint: "أدوات خياطة"},
		{Question: "أعيد ترتيب الحروف: ت و ق ل", Answer: "وقت", Hint: "الزمن"},
		{Question: "ما يأتي بعد: ٢، ٦، ١٢، ٢٠، ٣٠، ؟", Answer: "٤٢", Hint: "الفرق يزداد"},
	},
	TierExpert: {
		{Question: "أعيد ترتيب الحروف: ح ا س ب و ت م ر ا ك", Answer: "حاسوب متراكم", Hint: "جهاز إلكتروني متقدم"},
		{Question: "ما يأتي بعد: ١، ٨، ٢٧، ٦٤، ؟", Answer: "١٢٥", Hint: "مكعبات الأرقام"},
		{Question: "حزر اللغز: أنا أول من خلق ولكنني آخر من يموت، أحضر في كل مكان ولكنني لا أُرى", Answer: "الصمت", Hint: "غياب الصوت"},
	},
}
