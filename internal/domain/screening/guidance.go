package screening

// Step is one bullet of a guidance block.
type Step struct {
	Heading string `json:"heading"`
	Text    string `json:"text"`
}

// Guidance is the fixed content shown next to a prediction.
type Guidance struct {
	Headline   string `json:"headline"`
	Disclaimer string `json:"disclaimer"`
	Title      string `json:"title"`
	Intro      string `json:"intro"`
	Steps      []Step `json:"steps"`
	Ordered    bool   `json:"ordered"`
}

// GuidanceFor picks the next-steps block for a high-risk label and the maintenance tips
// otherwise.
func GuidanceFor(label int) Guidance {
	if label == LabelHighRisk {
		return Guidance{
			Headline:   "High risk of Depression",
			Disclaimer: "This is not a diagnosis. Should you require help, please consult a professional for guidance.",
			Title:      "Next Steps & Resources",
			Intro:      "It's important to address these feelings. Consider taking these steps:",
			Steps: []Step{
				{Heading: "Talk to Someone", Text: "Reach out to a friend, family member, or university counselor."},
				{Heading: "Seek Professional Help", Text: "A mental health professional can provide guidance and support."},
				{Heading: "University Resources", Text: "Check your university's wellness center for available services."},
			},
		}
	}
	return Guidance{
		Headline:   "Low risk of Depression",
		Disclaimer: "This is not a diagnosis. Continue to prioritise your well-being.",
		Title:      "Maintaining Your Well-being",
		Intro:      "It's great that you're in a positive space. Here are some tips to maintain it:",
		Steps: []Step{
			{Heading: "Stay Connected", Text: "Continue to nurture your social connections."},
			{Heading: "Mindful Habits", Text: "Keep up with healthy sleep and dietary patterns."},
			{Heading: "Manage Stress", Text: "Proactively manage academic and financial stress with planning and support."},
		},
		Ordered: true,
	}
}
