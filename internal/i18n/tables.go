package i18n

import "github.com/disha-labs/disha-backend/internal/nlp"

// phraseTables hold every phrase the assistant can produce, per locale.
// English is complete; regional tables cover the high-traffic flows and
// fall back to English elsewhere. Regional entries are romanized except
// Marathi, matching how users actually type on feature phones.
var phraseTables = map[string]map[Key]string{

	nlp.LocaleEnglish: {
		PromptAge:           "What is your age?",
		PromptEducationWork: "What is your education or experience?",
		PromptCityState:     "Which city/state are you from?",
		PromptWorkMode:      "Do you prefer WFH or WFO?",
		PromptStudyClass:    "Which class or degree are you studying in?",
		PromptField:         "Which field are you interested in?",
		PromptCategory:      "Your category? (General / OBC / SC / ST)",
		PromptGender:        "Your gender?",
		PromptState:         "Which state are you from?",
		PromptQualification: "Your highest qualification?",
		PromptFieldSubject:  "Which field or subject?",
		PromptClassSemester: "Which class or semester?",
		PromptSubject:       "Which subject do you need help with?",
		PromptIncome:        "Approx annual family income?",

		SummaryJobGeneral:         "Here are some job opportunities.",
		SummaryJobStudent:         "Entry-level job openings for students.",
		SummaryInternshipGeneral:  "Here are some internship opportunities.",
		SummaryInternshipStudent:  "Student internship opportunities.",
		SummaryScholarshipGeneral: "Here are some scholarship opportunities for students.",
		SummaryScholarshipFemale:  "Scholarship programs for female students.",
		SummaryFellowshipGeneral:  "Here are some fellowship and research grant opportunities.",
		SummarySchemeGeneral:      "Here are some government schemes you may be eligible for.",
		SummarySchemeFemale:       "Women-specific government schemes.",
		SummarySchemeSenior:       "Government schemes for senior citizens.",
		SummaryEducationGeneral:   "Here are some free study resources for your class and subject.",

		MsgCouldNotUnderstand: "Sorry, I couldn't understand. Try jobs, internship or schemes.",
		MsgApology:            "Sorry, we don't have details for that yet. Please check the national portal.",
	},

	nlp.LocaleHindi: {
		PromptAge:           "Aapki umar kitni hai?",
		PromptEducationWork: "Aapki education ya experience kya hai?",
		PromptCityState:     "Aap kis city/state se ho?",
		PromptWorkMode:      "Aapko WFH chahiye ya WFO?",
		PromptStudyClass:    "Aap kis class ya degree mein padh rahe ho?",
		PromptField:         "Aapko kis field mein interest hai?",
		PromptCategory:      "Aapki category kya hai? (General / OBC / SC / ST)",
		PromptGender:        "Aapka gender kya hai?",
		PromptState:         "Aap kis rajya se ho?",
		PromptQualification: "Aapki sabse badi qualification kya hai?",
		PromptFieldSubject:  "Kaun sa field ya subject?",
		PromptClassSemester: "Kaun si class ya semester?",
		PromptSubject:       "Kis subject mein madad chahiye?",
		PromptIncome:        "Parivar ki salana aay lagbhag kitni hai?",

		SummaryJobGeneral:         "Yahan kuch job ke avsar diye gaye hain.",
		SummaryInternshipGeneral:  "Yahan kuch internship ke avsar diye gaye hain.",
		SummaryScholarshipGeneral: "Yahan students ke liye kuch scholarship ke avsar diye gaye hain.",
		SummaryFellowshipGeneral:  "Yahan kuch fellowship aur research grant ke avsar diye gaye hain.",
		SummarySchemeGeneral:      "Yahan kuch sarkari yojanayein hain jinke liye aap patra ho sakte hain.",

		MsgCouldNotUnderstand: "Maaf kijiye, samajh nahi aaya. Jobs, internship ya schemes try kijiye.",
	},

	nlp.LocaleOdia: {
		PromptStudyClass: "Apana kon class ba degree re padhuchanti?",
		PromptCategory:   "Apananka category kana? (General / OBC / SC / ST)",
		PromptGender:     "Apananka gender kana?",
		PromptState:      "Apana kon rajya ru?",

		SummaryScholarshipGeneral: "Ethi students mananka pain kichhi scholarship sujog achhi.",
	},

	nlp.LocaleMarathi: {
		PromptStudyClass: "तुम्ही कोणत्या वर्गात किंवा पदवीत शिक्षण घेत आहात?",
		PromptCategory:   "तुमची प्रवर्ग कोणती आहे? (General / OBC / SC / ST)",
		PromptGender:     "तुमचे लिंग काय आहे?",
		PromptState:      "तुम्ही कोणत्या राज्यातून आहात?",

		SummaryScholarshipGeneral: "विद्यार्थ्यांसाठी काही शिष्यवृत्ती संधी येथे दिल्या आहेत.",
	},

	nlp.LocaleBengali: {
		PromptStudyClass: "Tumi kon class ba degree e porcho?",
		PromptCategory:   "Tomar category ki? (General / OBC / SC / ST)",
		PromptGender:     "Tomar gender ki?",
		PromptState:      "Tumi kon rajyer?",

		SummaryScholarshipGeneral: "Chhatro der jonno kichu scholarship sujog ekhane dewa holo.",
	},
}
