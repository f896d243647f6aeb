package questions

// Deterministic template questions used when no generation service is
// configured or a generation call fails. The interview must always be able to
// run with zero external dependencies.

var fallbackTemplates = map[Language]map[Category][]string{
	LanguageEnglish: {
		CategoryBehavioral: {
			"Tell me about a time you had to deliver under a tight deadline. What did you do?",
			"Describe a conflict you had with a teammate and how you resolved it.",
			"Tell me about a mistake you made at work and what you learned from it.",
			"Describe a time you had to convince others to adopt your approach.",
			"Tell me about a project you are most proud of and your role in it.",
		},
		CategoryTechnical: {
			"Walk me through the architecture of a system you built recently.",
			"How do you approach debugging a production incident?",
			"Describe a technical trade-off you made and why.",
			"How do you decide when code is ready to ship?",
			"Explain a piece of technology from your resume as if I were a new teammate.",
		},
		CategorySituational: {
			"Your project is at risk of missing its deadline. What do you do first?",
			"A stakeholder asks for a change that you believe is a bad idea. How do you respond?",
			"You inherit a codebase with no tests and a looming release. How do you proceed?",
			"Two senior colleagues disagree on direction and you are asked to break the tie. What do you do?",
			"You discover a critical bug the day before launch. Walk me through your next steps.",
		},
		CategoryMotivational: {
			"Why are you interested in this role?",
			"Where do you want to be in three years, and how does this position fit?",
			"What kind of work energizes you the most?",
			"Why are you leaving your current position?",
			"What would make this job a success for you in the first six months?",
		},
	},
	LanguageSpanish: {
		CategoryBehavioral: {
			"Cuéntame sobre una ocasión en la que tuviste que cumplir con un plazo ajustado. ¿Qué hiciste?",
			"Describe un conflicto con un compañero de equipo y cómo lo resolviste.",
			"Cuéntame sobre un error que cometiste en el trabajo y qué aprendiste.",
			"Describe una ocasión en la que convenciste a otros de adoptar tu enfoque.",
			"Cuéntame sobre el proyecto del que estás más orgulloso y tu papel en él.",
		},
		CategoryTechnical: {
			"Explícame la arquitectura de un sistema que hayas construido recientemente.",
			"¿Cómo abordas la depuración de un incidente en producción?",
			"Describe una decisión técnica de compromiso que tomaste y por qué.",
			"¿Cómo decides cuándo el código está listo para publicarse?",
			"Explica una tecnología de tu currículum como si yo fuera un nuevo compañero.",
		},
		CategorySituational: {
			"Tu proyecto corre el riesgo de no cumplir el plazo. ¿Qué haces primero?",
			"Un interesado pide un cambio que consideras una mala idea. ¿Cómo respondes?",
			"Heredas una base de código sin pruebas y con una entrega inminente. ¿Cómo procedes?",
			"Dos colegas sénior no se ponen de acuerdo y te piden desempatar. ¿Qué haces?",
			"Descubres un error crítico el día antes del lanzamiento. Descríbeme tus siguientes pasos.",
		},
		CategoryMotivational: {
			"¿Por qué te interesa este puesto?",
			"¿Dónde quieres estar en tres años y cómo encaja esta posición?",
			"¿Qué tipo de trabajo te da más energía?",
			"¿Por qué dejas tu puesto actual?",
			"¿Qué haría de este trabajo un éxito para ti en los primeros seis meses?",
		},
	},
}

// FallbackQuestions returns deterministic template questions honoring the
// exact requested count per category. Counts beyond the template pool cycle
// through it. Languages without a template set use the default language.
func FallbackQuestions(counts map[Category]int, lang Language) []Question {
	templates, ok := fallbackTemplates[lang]
	if !ok {
		templates = fallbackTemplates[DefaultLanguage]
	}

	out := make([]Question, 0, 8)
	for _, category := range Categories() {
		n := counts[category]
		pool := templates[category]
		for i := 0; i < n; i++ {
			out = append(out, Question{
				Category: category,
				Text:     pool[i%len(pool)],
			})
		}
	}
	return out
}
