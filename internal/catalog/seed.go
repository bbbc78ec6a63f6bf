package catalog

// seedItems defines the 30 TALD scale items. Ids follow the published scale
// ordering; graduation texts condense the rating manual. Objective items are
// rated from the interview itself, subjective items from what the patient
// reports about their own thinking.
var seedItems = []Item{
	// Objective phenomena.
	{
		ID:          1,
		Name:        "Poverty of Speech",
		Category:    CategoryObjective,
		Description: "Restricted amount of spontaneous speech; answers are brief, monosyllabic and unelaborated.",
		Criteria:    "Replies stay minimal even to open questions and invitations to elaborate.",
		Example:     "Asked to describe a typical day, the patient answers \"I get up. I eat. Nothing else.\"",
		Synonyms:    []string{"alogia", "laconic speech"},
		ExampleCues: []string{"tell me about", "describe", "elaborate", "in your own words"},
		Graduation: [GradeMax + 1]string{
			"not present",
			"doubtful",
			"mild: answers are short but occasionally elaborated",
			"moderate: mostly monosyllabic answers, elaboration only on prompting",
			"severe: nearly mute, single words at most",
		},
		DefaultGrade: 3,
	},
	{
		ID:          2,
		Name:        "Slowed Thinking",
		Category:    CategoryObjective,
		Description: "Thought processes appear slowed; long latencies before answers, sluggish progression of ideas.",
		Criteria:    "Observable delay between question and answer with slowed speech tempo throughout.",
		Example:     "Every question is followed by a pause of many seconds before a laborious reply begins.",
		Synonyms:    []string{"bradyphrenia", "retarded thinking"},
		ExampleCues: []string{"take your time", "how quickly", "pace", "hard to think"},
		Graduation: [GradeMax + 1]string{
			"not present",
			"doubtful",
			"mild: noticeable latencies that do not disturb the interview",
			"moderate: long pauses, the interview slows considerably",
			"severe: answers arrive only after very long delays, if at all",
		},
		DefaultGrade: 2,
	},
	{
		ID:          3,
		Name:        "Circumstantiality",
		Category:    CategoryObjective,
		Description: "Thinking is circuitous; the goal of the answer is reached only after a surplus of unnecessary detail.",
		Criteria:    "The patient eventually answers the question but buries the point under irrelevant elaboration.",
		Example:     "Asked whether the trip to the clinic was easy, the patient recounts the bus schedule, the weather and a childhood memory before saying \"yes\".",
		Synonyms:    []string{"circumstantial thinking", "overinclusive detail"},
		ExampleCues: []string{"how was your trip", "get to the point", "daily routine", "briefly"},
		Graduation: [GradeMax + 1]string{
			"not present",
			"doubtful",
			"mild: occasional digressions, goal reached without help",
			"moderate: frequent detours, the interviewer must redirect",
			"severe: the goal of the answer is almost never reached unaided",
		},
		DefaultGrade: 2,
	},
	{
		ID:          4,
		Name:        "Tangentiality",
		Category:    CategoryObjective,
		Description: "Replies slide past the question onto a related but different topic and never return to the point.",
		Criteria:    "Answers start near the question but end somewhere else; the actual question remains unanswered.",
		Example:     "Asked about sleep, the patient talks about the bed they bought, then mattresses in general, never about sleeping.",
		Synonyms:    []string{"tangential thinking", "oblique replies"},
		ExampleCues: []string{"how do you feel", "what brings you", "answer my question", "sleep"},
		Graduation: [GradeMax + 1]string{
			"not present",
			"doubtful",
			"mild: occasional oblique answers, corrects when redirected",
			"moderate: most answers drift off the question",
			"severe: questions are practically never answered",
		},
		DefaultGrade: 2,
	},
	{
		ID:          5,
		Name:        "Derailment",
		Category:    CategoryObjective,
		Description: "The train of thought slips between unrelated or distantly related ideas within or between sentences.",
		Criteria:    "Breaks in the associative chain that the listener cannot reconstruct from context.",
		Example:     "\"I was at work, the lamp is green, my sister never called about the garden.\"",
		Synonyms:    []string{"loosening of associations", "asyndesis"},
		ExampleCues: []string{"follow you", "connection", "stay on topic", "how did we get here"},
		Graduation: [GradeMax + 1]string{
			"not present",
			"doubtful",
			"mild: isolated slips, overall thread recoverable",
			"moderate: repeated slips, thread often lost",
			"severe: speech is a sequence of unconnected fragments",
		},
		DefaultGrade: 2,
	},
	{
		ID:          6,
		Name:        "Crosstalk",
		Category:    CategoryObjective,
		Description: "The patient understands the question but answers beside the point while staying grammatically intact.",
		Criteria:    "Comprehension is demonstrably preserved, yet the answer consistently misses what was asked.",
		Example:     "\"How old are you?\" — \"I live on the third floor.\"",
		Synonyms:    []string{"vorbeireden", "talking past the point"},
		ExampleCues: []string{"the question was", "let me ask again", "specifically", "did you understand"},
		Graduation: [GradeMax + 1]string{
			"not present",
			"doubtful",
			"mild: occasional beside-the-point answers",
			"moderate: frequent, redirection only briefly effective",
			"severe: virtually every answer misses the question",
		},
		DefaultGrade: 2,
	},
	{
		ID:          7,
		Name:        "Loss of Thought",
		Category:    CategoryObjective,
		Description: "The flow of speech halts and the prior train of thought cannot be retrieved.",
		Criteria:    "Observable stop mid-utterance followed by inability to resume the dropped idea.",
		Example:     "\"What I wanted to say was... it is gone.\"",
		Synonyms:    []string{"blocking", "thought stopping"},
		ExampleCues: []string{"you stopped", "lost your thread", "please continue", "what were you saying"},
		Graduation: [GradeMax + 1]string{
			"not present",
			"doubtful",
			"mild: isolated halts, thread usually recovered",
			"moderate: repeated halts, thread often unrecoverable",
			"severe: sustained speech is impossible, constant losses",
		},
		DefaultGrade: 2,
	},
	{
		ID:          8,
		Name:        "Rupture of Thought",
		Category:    CategoryObjective,
		Description: "Sudden break of an ongoing sentence without external cause; speech resumes on a different idea.",
		Criteria:    "Abrupt mid-sentence interruption, then continuation with unrelated content.",
		Example:     "\"My mother always used to— the tram runs every ten minutes.\"",
		Synonyms:    []string{"blocking", "sudden break"},
		ExampleCues: []string{"you broke off", "mid-sentence", "carry on", "interrupted"},
		Graduation: [GradeMax + 1]string{
			"not present",
			"doubtful",
			"mild: rare ruptures",
			"moderate: repeated ruptures disrupt the interview",
			"severe: coherent sentences rarely reach their end",
		},
		DefaultGrade: 2,
	},
	{
		ID:          9,
		Name:        "Logorrhoea",
		Category:    CategoryObjective,
		Description: "Excessive, pressured flow of speech that is hard to interrupt.",
		Criteria:    "Markedly increased speech production; the interviewer struggles to get a word in.",
		Example:     "A question about appetite triggers ten uninterrupted minutes covering meals, shops, prices and neighbours.",
		Synonyms:    []string{"pressured speech", "excessive speech"},
		ExampleCues: []string{"briefly", "in one word", "short answer", "let me interrupt"},
		Graduation: [GradeMax + 1]string{
			"not present",
			"doubtful",
			"mild: talkative but interruptible",
			"moderate: hard to interrupt, answers overlong",
			"severe: continuous flow, interruption nearly impossible",
		},
		DefaultGrade: 3,
	},
	{
		ID:          10,
		Name:        "Perseveration",
		Category:    CategoryObjective,
		Description: "Repetition of the same words, phrases or ideas beyond their relevance, despite topic changes.",
		Criteria:    "Previously produced content recurs in contexts where it no longer fits.",
		Example:     "Whatever is asked, the patient returns to the broken washing machine mentioned at the start.",
		Synonyms:    []string{"perseverative thinking", "repetition of ideas"},
		ExampleCues: []string{"something else", "new topic", "move on", "earlier you said"},
		Graduation: [GradeMax + 1]string{
			"not present",
			"doubtful",
			"mild: occasional returns to prior content",
			"moderate: frequent recurrence, topic changes only briefly succeed",
			"severe: nearly all speech circles the same content",
		},
		DefaultGrade: 2,
	},
	{
		ID:          11,
		Name:        "Verbigeration",
		Category:    CategoryObjective,
		Description: "Senseless repetition of single words or short phrases, often within the same sentence.",
		Criteria:    "Words are repeated immediately and without communicative function.",
		Example:     "\"I went, went, went to the, to the shop, shop.\"",
		Synonyms:    []string{"palilalia", "word repetition"},
		ExampleCues: []string{"you repeat", "same word", "notice that", "once more"},
		Graduation: [GradeMax + 1]string{
			"not present",
			"doubtful",
			"mild: occasional doubled words",
			"moderate: repetitions in most utterances",
			"severe: speech dominated by iterations",
		},
		DefaultGrade: 2,
	},
	{
		ID:          12,
		Name:        "Echolalia",
		Category:    CategoryObjective,
		Description: "The patient echoes words or phrases of the interviewer instead of, or before, answering.",
		Criteria:    "Interviewer utterances are repeated verbatim or near-verbatim without request.",
		Example:     "\"Do you sleep well?\" — \"Sleep well... do you sleep well... yes.\"",
		Synonyms:    []string{"echoing speech"},
		ExampleCues: []string{"repeat after me", "my words", "own words"},
		Graduation: [GradeMax + 1]string{
			"not present",
			"doubtful",
			"mild: occasional echoed fragments",
			"moderate: frequent echoing before answers",
			"severe: answers consist mostly of echoes",
		},
		DefaultGrade: 2,
	},
	{
		ID:          13,
		Name:        "Neologisms",
		Category:    CategoryObjective,
		Description: "Formation of new words with idiosyncratic meaning unknown to the language community.",
		Criteria:    "Word creations not explicable as slips of the tongue and used as if conventional.",
		Example:     "\"The doctor gave me a flumicator for my nerves.\"",
		Synonyms:    []string{"invented words", "word creation"},
		ExampleCues: []string{"that word", "what do you mean by", "never heard", "explain the word"},
		Graduation: [GradeMax + 1]string{
			"not present",
			"doubtful",
			"mild: isolated new formations",
			"moderate: repeated neologisms obscure meaning",
			"severe: speech laced with private vocabulary",
		},
		DefaultGrade: 2,
	},
	{
		ID:          14,
		Name:        "Phonemic Paraphasia",
		Category:    CategoryObjective,
		Description: "Sound-level distortions of words; syllables are substituted, transposed or added.",
		Criteria:    "Target words remain recognizable but are phonologically deformed.",
		Example:     "\"I took the sublay... the supway... the subway here.\"",
		Synonyms:    []string{"literal paraphasia", "sound substitution"},
		ExampleCues: []string{"say that again", "pronounce", "sounded like"},
		Graduation: [GradeMax + 1]string{
			"not present",
			"doubtful",
			"mild: occasional distortions, self-corrected",
			"moderate: frequent distortions hinder understanding",
			"severe: much of speech phonologically deformed",
		},
		DefaultGrade: 2,
	},
	{
		ID:          15,
		Name:        "Semantic Paraphasia",
		Category:    CategoryObjective,
		Description: "Use of wrong words whose meaning is related to the intended one.",
		Criteria:    "Inappropriate word choice from the same semantic field, mostly unnoticed by the patient.",
		Example:     "\"I cut the bread with the spoon... with the knife, I mean.\"",
		Synonyms:    []string{"verbal paraphasia", "word substitution"},
		ExampleCues: []string{"did you mean", "word choice", "you called it"},
		Graduation: [GradeMax + 1]string{
			"not present",
			"doubtful",
			"mild: isolated substitutions",
			"moderate: repeated substitutions cloud meaning",
			"severe: pervasive wrong word usage",
		},
		DefaultGrade: 2,
	},
	{
		ID:          16,
		Name:        "Clanging",
		Category:    CategoryObjective,
		Description: "Word choice governed by sound rather than meaning; rhymes and assonances drive the speech.",
		Criteria:    "Associations follow phonetic similarity at the expense of sense.",
		Example:     "\"I feel fine, fine like wine, wine in a line.\"",
		Synonyms:    []string{"clang association", "rhyming speech"},
		ExampleCues: []string{"rhyme", "sound alike", "why those words"},
		Graduation: [GradeMax + 1]string{
			"not present",
			"doubtful",
			"mild: occasional sound-driven choices",
			"moderate: rhyming chains recur across answers",
			"severe: sound associations dominate speech",
		},
		DefaultGrade: 2,
	},
	{
		ID:          17,
		Name:        "Manneristic Speech",
		Category:    CategoryObjective,
		Description: "Stilted, overly formal or affected language that feels unnatural for the situation.",
		Criteria:    "Consistently pompous or outmoded phrasing without irony.",
		Example:     "\"I beg to inform you that my slumber has of late been most unsatisfactory.\"",
		Synonyms:    []string{"stilted speech", "affected language"},
		ExampleCues: []string{"formal", "unusual phrasing", "speak plainly"},
		Graduation: [GradeMax + 1]string{
			"not present",
			"doubtful",
			"mild: occasional affected turns of phrase",
			"moderate: mannered style colours most answers",
			"severe: speech entirely stilted and artificial",
		},
		DefaultGrade: 2,
	},
	{
		ID:          18,
		Name:        "Poverty of Content",
		Category:    CategoryObjective,
		Description: "Speech of adequate amount that conveys little information; vague, empty, repetitive.",
		Criteria:    "Long answers that remain abstract and non-specific despite probing.",
		Example:     "\"Things are, you know, the way they are, like always, more or less, in general.\"",
		Synonyms:    []string{"empty speech", "vague speech"},
		ExampleCues: []string{"for example", "concretely", "what exactly", "specifics"},
		Graduation: [GradeMax + 1]string{
			"not present",
			"doubtful",
			"mild: vagueness in places, concrete on probing",
			"moderate: probing rarely yields specifics",
			"severe: speech conveys almost no information",
		},
		DefaultGrade: 2,
	},
	{
		ID:          19,
		Name:        "Restricted Thinking",
		Category:    CategoryObjective,
		Description: "The range of thought content is narrowed to one or few topics to which everything returns.",
		Criteria:    "The patient brings every subject back to a fixed theme even when offered alternatives.",
		Example:     "Work, family and weather all end in the patient's court case.",
		Synonyms:    []string{"restriction of thought", "fixation on one topic"},
		ExampleCues: []string{"other interests", "apart from that", "change of subject"},
		Graduation: [GradeMax + 1]string{
			"not present",
			"doubtful",
			"mild: preferred theme, other topics possible",
			"moderate: returns to the theme within a few sentences",
			"severe: no topic other than the fixed theme",
		},
		DefaultGrade: 2,
	},
	{
		ID:          20,
		Name:        "Concretism",
		Category:    CategoryObjective,
		Description: "Inability to abstract; proverbs and figurative language are interpreted literally.",
		Criteria:    "Literal interpretation where abstraction is plainly required.",
		Example:     "\"People in glass houses shouldn't throw stones\" — \"because the glass would break\".",
		Synonyms:    []string{"concrete thinking", "literal interpretation"},
		ExampleCues: []string{"proverb", "figure of speech", "what does it mean", "metaphor"},
		Graduation: [GradeMax + 1]string{
			"not present",
			"doubtful",
			"mild: abstraction effortful but achievable",
			"moderate: mostly literal interpretations",
			"severe: abstraction impossible",
		},
		DefaultGrade: 2,
	},
	{
		ID:          21,
		Name:        "Incoherence",
		Category:    CategoryObjective,
		Description: "Grammar and associative structure disintegrate; speech becomes incomprehensible.",
		Criteria:    "Syntax breaks down to the point that meaning cannot be reconstructed.",
		Example:     "\"House over when the green is must, yesterday all of it never.\"",
		Synonyms:    []string{"word salad", "schizophasia"},
		ExampleCues: []string{"understand you", "make sense", "rephrase"},
		Graduation: [GradeMax + 1]string{
			"not present",
			"doubtful",
			"mild: isolated ungrammatical stretches",
			"moderate: meaning frequently unrecoverable",
			"severe: speech entirely incomprehensible",
		},
		DefaultGrade: 2,
	},
	{
		ID:          22,
		Name:        "Flight of Ideas",
		Category:    CategoryObjective,
		Description: "Accelerated thinking with rapid jumps between understandably linked topics.",
		Criteria:    "Quick topic shifts whose connections remain superficially comprehensible.",
		Example:     "From breakfast to bakeries to flour prices to farming within one breath.",
		Synonyms:    []string{"ideenflucht", "racing topic shifts"},
		ExampleCues: []string{"slow down", "one topic", "stay with"},
		Graduation: [GradeMax + 1]string{
			"not present",
			"doubtful",
			"mild: lively topic changes, steerable",
			"moderate: jumps dominate, steering briefly works",
			"severe: unstoppable chain of shifting topics",
		},
		DefaultGrade: 3,
	},

	// Subjective phenomena: reported by the patient about their own thinking.
	{
		ID:          23,
		Name:        "Inhibited Thinking",
		Category:    CategorySubjective,
		Description: "Thinking is experienced as slowed and effortful, as if braked against inner resistance.",
		Criteria:    "The patient reports that thinking itself feels slowed or blocked from inside.",
		Example:     "\"It is like wading through mud in my head, every thought costs strength.\"",
		Synonyms:    []string{"thought inhibition", "subjective slowing"},
		ExampleCues: []string{"thoughts feel", "inside your head", "thinking feel", "effort to think"},
		Graduation: [GradeMax + 1]string{
			"not present",
			"doubtful",
			"mild: occasional subjective slowing",
			"moderate: daily life impaired by slowed thinking",
			"severe: thinking experienced as almost arrested",
		},
		DefaultGrade: 2,
	},
	{
		ID:          24,
		Name:        "Rumination",
		Category:    CategorySubjective,
		Description: "Recurring circles of thought around the same themes that cannot be set aside.",
		Criteria:    "The patient reports involuntary, repetitive dwelling experienced as unproductive.",
		Example:     "\"The same conversation replays in my mind all night, I cannot switch it off.\"",
		Synonyms:    []string{"ruminative thinking", "brooding"},
		ExampleCues: []string{"over and over", "dwell", "let go of", "keep coming back"},
		Graduation: [GradeMax + 1]string{
			"not present",
			"doubtful",
			"mild: circumscribed brooding, distraction works",
			"moderate: hours per day lost to rumination",
			"severe: near-continuous, distraction impossible",
		},
		DefaultGrade: 2,
	},
	{
		ID:          25,
		Name:        "Poverty of Thought",
		Category:    CategorySubjective,
		Description: "Subjective emptiness of the mind; the patient experiences an absence of thoughts.",
		Criteria:    "The patient reports that the head feels empty, with nothing to think.",
		Example:     "\"There is simply nothing in my head, it is blank in there.\"",
		Synonyms:    []string{"empty mind", "absence of thoughts"},
		ExampleCues: []string{"mind empty", "no thoughts", "blank"},
		Graduation: [GradeMax + 1]string{
			"not present",
			"doubtful",
			"mild: episodes of felt emptiness",
			"moderate: emptiness most of the day",
			"severe: persistent experienced absence of thought",
		},
		DefaultGrade: 2,
	},
	{
		ID:          26,
		Name:        "Thought Interference",
		Category:    CategorySubjective,
		Description: "Unrelated thoughts intrude into the intended train of thought and disturb it.",
		Criteria:    "The patient reports alien or irrelevant thoughts pushing into ongoing thinking.",
		Example:     "\"When I try to concentrate, other thoughts shove themselves in between.\"",
		Synonyms:    []string{"intrusive thoughts", "thought disturbance"},
		ExampleCues: []string{"intrude", "unwanted thoughts", "interfere", "push in"},
		Graduation: [GradeMax + 1]string{
			"not present",
			"doubtful",
			"mild: occasional intrusions",
			"moderate: intrusions disturb most focused thinking",
			"severe: intended thinking constantly overrun",
		},
		DefaultGrade: 2,
	},
	{
		ID:          27,
		Name:        "Thought Pressure",
		Category:    CategorySubjective,
		Description: "Subjective excess of simultaneous thoughts experienced as crowding and unstoppable.",
		Criteria:    "The patient reports too many thoughts at once, beyond voluntary control.",
		Example:     "\"Hundreds of thoughts at the same time, my head is far too full.\"",
		Synonyms:    []string{"pressure of thought", "too many thoughts"},
		ExampleCues: []string{"too many thoughts", "at once", "crowded", "racing"},
		Graduation: [GradeMax + 1]string{
			"not present",
			"doubtful",
			"mild: episodes of thought crowding",
			"moderate: daily, clearly distressing pressure",
			"severe: relentless crowding, no quiet moment",
		},
		DefaultGrade: 2,
	},
	{
		ID:          28,
		Name:        "Thought Blocking",
		Category:    CategorySubjective,
		Description: "The patient experiences sudden breaks in which an ongoing thought is gone.",
		Criteria:    "Reported abrupt disappearance of thoughts, distinct from distraction.",
		Example:     "\"Mid-thought it is suddenly cut off, as if someone pulled the plug.\"",
		Synonyms:    []string{"subjective blocking", "mind goes blank"},
		ExampleCues: []string{"suddenly gone", "cut off", "blank mid-thought"},
		Graduation: [GradeMax + 1]string{
			"not present",
			"doubtful",
			"mild: isolated experienced breaks",
			"moderate: breaks several times per day",
			"severe: coherent thinking constantly severed",
		},
		DefaultGrade: 2,
	},
	{
		ID:          29,
		Name:        "Dissociation of Thinking",
		Category:    CategorySubjective,
		Description: "Thoughts are experienced as fragmented and no longer connected to each other.",
		Criteria:    "The patient reports that their thoughts do not fit together any more.",
		Example:     "\"My thoughts are in pieces, they do not belong to one another.\"",
		Synonyms:    []string{"fragmented thinking", "disconnected thoughts"},
		ExampleCues: []string{"fit together", "connected", "fragmented", "in pieces"},
		Graduation: [GradeMax + 1]string{
			"not present",
			"doubtful",
			"mild: occasional felt fragmentation",
			"moderate: coherence of thinking often lost",
			"severe: thinking experienced as shattered",
		},
		DefaultGrade: 2,
	},
	{
		ID:          30,
		Name:        "Receptive Language Disturbance",
		Category:    CategorySubjective,
		Description: "The patient experiences difficulty grasping the meaning of heard or read language.",
		Criteria:    "Reported comprehension difficulty despite intact hearing and attention.",
		Example:     "\"I hear the words but they take a long time to mean anything.\"",
		Synonyms:    []string{"comprehension difficulty", "understanding problems"},
		ExampleCues: []string{"understand me", "follow what I say", "meaning arrives late"},
		Graduation: [GradeMax + 1]string{
			"not present",
			"doubtful",
			"mild: effortful comprehension of complex speech",
			"moderate: everyday speech often not grasped at once",
			"severe: spoken language largely fails to register",
		},
		DefaultGrade: 2,
	},
}
