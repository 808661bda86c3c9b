package corpus

import "github.com/verobrix/verobrix/internal/model"

// builtinRecords returns the essential fallback authorities used when
// no corpus file is available for a record kind.
func builtinRecords(kind model.RecordKind) []model.Record {
	switch kind {
	case model.KindCaseLaw:
		return builtinCaseLaw()
	case model.KindStatute:
		return builtinStatutes()
	case model.KindConstitutional:
		return builtinConstitutional()
	case model.KindAffidavit:
		return builtinAffidavits()
	}
	return nil
}

func builtinCaseLaw() []model.Record {
	return []model.Record{
		{
			Kind:          model.KindCaseLaw,
			Name:          "Hale v. Henkel",
			Citation:      "201 U.S. 43 (1906)",
			Year:          1906,
			Jurisdiction:  "supreme_court",
			Body:          "The individual may stand upon his constitutional rights as a citizen. He is entitled to carry on his private business in his own way. His rights are protected against both federal and state interference.",
			RemedyTypes:   []string{"sovereignty", "rights_protection", "constitutional"},
			KeyPrinciples: []string{"sovereign immunity", "right to contract", "private business protection"},
		},
		{
			Kind:          model.KindCaseLaw,
			Name:          "Bond v. United States",
			Citation:      "529 U.S. 334 (2000)",
			Year:          2000,
			Jurisdiction:  "supreme_court",
			Body:          "The Constitution protects individuals from intrusion by the government, including in their relationships with others.",
			RemedyTypes:   []string{"rights_protection", "government_limitation"},
			KeyPrinciples: []string{"right to privacy", "government limitations", "individual sovereignty"},
		},
		{
			Kind:          model.KindCaseLaw,
			Name:          "Marbury v. Madison",
			Citation:      "5 U.S. (1 Cranch) 137 (1803)",
			Year:          1803,
			Jurisdiction:  "supreme_court",
			Body:          "It is emphatically the province and duty of the judicial department to say what the law is.",
			RemedyTypes:   []string{"judicial_review", "constitutional_law"},
			KeyPrinciples: []string{"judicial review", "separation of powers", "constitutional supremacy"},
		},
		{
			Kind:          model.KindCaseLaw,
			Name:          "Murdoch v. Pennsylvania",
			Citation:      "319 U.S. 105 (1943)",
			Year:          1943,
			Jurisdiction:  "supreme_court",
			Body:          "A state may not, through licensing requirements, impose a prior restraint on the exercise of constitutional rights.",
			RemedyTypes:   []string{"rights_protection", "religious_freedom", "prior_restraint"},
			KeyPrinciples: []string{"first amendment", "prior restraint", "religious freedom"},
		},
	}
}

func builtinStatutes() []model.Record {
	return []model.Record{
		{
			Kind:          model.KindStatute,
			Name:          "UCC 1-207 - Reservation of Rights",
			Citation:      "UCC § 1-207",
			CodeType:      "UCC",
			Section:       "1-207",
			Body:          "A party who with explicit reservation of rights performs or promises performance or assents to performance of the contract is not prejudiced by his failure to perform.",
			Application:   "Preserves rights when conducting business under government regulation",
			KeyProvisions: []string{"without prejudice", "reservation of rights", "commercial transactions"},
		},
		{
			Kind:          model.KindStatute,
			Name:          "UCC 3-104 - Negotiable Instrument Definition",
			Citation:      "UCC § 3-104",
			CodeType:      "UCC",
			Section:       "3-104",
			Body:          "A negotiable instrument is an unconditional promise or order to pay a fixed amount of money.",
			Application:   "Defines requirements for negotiable instruments in commerce",
			KeyProvisions: []string{"unconditional promise", "fixed amount", "negotiable instrument"},
		},
		{
			Kind:          model.KindStatute,
			Name:          "Title 18 USC § 241 - Conspiracy Against Rights",
			Citation:      "18 U.S.C. § 241",
			CodeType:      "USC",
			Section:       "241",
			Body:          "If two or more persons conspire to injure, oppress, threaten, or intimidate any person in the free exercise or enjoyment of any right or privilege secured to him by the Constitution, they shall be subject to criminal penalties.",
			Application:   "Criminal liability for conspiring to violate constitutional rights",
			KeyProvisions: []string{"conspiracy", "constitutional rights", "criminal penalties"},
		},
		{
			Kind:          model.KindStatute,
			Name:          "Title 18 USC § 242 - Deprivation of Rights Under Color of Law",
			Citation:      "18 U.S.C. § 242",
			CodeType:      "USC",
			Section:       "242",
			Body:          "Whoever, under color of any law, statute, ordinance, regulation, or custom, willfully subjects any person to the deprivation of any rights shall be liable.",
			Application:   "Criminal liability for rights violations by government officials",
			KeyProvisions: []string{"color of law", "rights deprivation", "official misconduct"},
		},
	}
}

func builtinConstitutional() []model.Record {
	return []model.Record{
		{
			Kind:        model.KindConstitutional,
			Name:        "Article IV - Privileges and Immunities",
			Section:     "2",
			Body:        "The Citizens of each State shall be entitled to all Privileges and Immunities of Citizens in the several States.",
			Application: "Protects right to travel and conduct business across state lines",
		},
		{
			Kind:        model.KindConstitutional,
			Name:        "First Amendment - Religious Freedom",
			Body:        "Congress shall make no law respecting an establishment of religion, or prohibiting the free exercise thereof.",
			Application: "Protects free exercise of religious beliefs and conscience",
		},
		{
			Kind:        model.KindConstitutional,
			Name:        "Fourth Amendment - Unreasonable Searches",
			Body:        "The right of the people to be secure in their persons, houses, papers, and effects, against unreasonable searches and seizures, shall not be violated.",
			Application: "Protects privacy and property from government intrusion",
		},
		{
			Kind:        model.KindConstitutional,
			Name:        "Sixth Amendment - Right to Counsel",
			Body:        "In all criminal prosecutions, the accused shall enjoy the right to have the Assistance of Counsel for his defence.",
			Application: "Ensures right to legal representation in criminal proceedings",
		},
	}
}

func builtinAffidavits() []model.Record {
	return []model.Record{
		{
			Kind:             model.KindAffidavit,
			Name:             "Affidavit of Sovereign Status",
			Types:            []string{"status_correction"},
			Jurisdiction:     "Common Law",
			Description:      "Declares sovereign status and rebuts presumptions of federal citizenship",
			TemplateText:     "AFFIDAVIT OF SOVEREIGN STATUS\n\nI, {NAME}, being duly sworn, hereby declare:\n1. I am a living man/woman.\n2. I am an American State National.",
			RequiredElements: []string{"name", "domicile", "status declaration", "notarization"},
			UsageNotes:       "Use to correct status in government records",
		},
		{
			Kind:             model.KindAffidavit,
			Name:             "Affidavit of Jurisdiction",
			Types:            []string{"jurisdiction"},
			Jurisdiction:     "Common Law",
			Description:      "Declares proper jurisdiction and venue for legal matters",
			TemplateText:     "AFFIDAVIT OF JURISDICTION\n\nI, {NAME}, hereby declare:\n1. My proper jurisdiction is Common Law.\n2. I consent only to laws I have knowingly agreed to.",
			RequiredElements: []string{"jurisdiction declaration", "venue specification", "consent limitations"},
			UsageNotes:       "Use to establish proper jurisdiction in legal proceedings",
		},
	}
}
