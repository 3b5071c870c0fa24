package ethics

import "strings"

// Step is one stage of the structured analysis: a fixed instruction plus the
// structural tag the model is told to wrap that stage's output in.
type Step struct {
	Instruction string
	Tag         string
}

// situationPlaceholder marks where the caller's situation text is substituted.
const situationPlaceholder = "{prompt}"

// Steps is the fixed six-stage analysis sequence. Order matters: the tags are
// part of the public /api/steps contract.
var Steps = []Step{
	{"Identify the ethical problem or dilemma in the following situation: {prompt}.", "<problem>"},
	{"Apply relevant ethical codes, principles, or frameworks to the identified problem", "<principles>"},
	{"Considering the principles, determine the nature and dimensions of the ethical dilemma, considering all stakeholders and potential consequences", "<dimensions>"},
	{"Given the dimensions, generate potential courses of action to address the ethical dilemma", "<actions>"},
	{"For each course of action, what are the potential consequences, and how do they align with the principles?", "<consequences>"},
	{"Based on the analysis, what is the most ethically justifiable course of action, and why does it align with the relevant principles and minimize harm to stakeholders?", "<answer>"},
}

// SystemRole is the fixed system instruction sent with every analysis call.
const SystemRole = `You are an expert in ethics conducting a comprehensive analysis of this situation.
Follow established ethical frameworks and principles.
Please keep your responses very concise and precise.
Always use markdown format for clarity (e.g., headings, code blocks, bold, > quotes, - unordered lists).
For each step, please provide a detailed analysis in the corresponding tags (<problem>, <principles>, <dimensions>, <actions>, <consequences>, or <answer>).
For example, a well-structured response for the first step might look like this:
<step_tag>
<problem>
My analysis of this step involves considering [insert relevant factors or principles].
This leads me to conclude that [insert conclusion].
</problem>
[Insert response]
</step_tag>
Please ONLY use ` + "`<answer>`" + ` tags once, ALWAYS around final response.
If you are unable to respond, reply 'incomplete' with no explanation."`

// ComposePrompt substitutes the situation into each step instruction and
// joins the instructions with their tags into the single combined prompt
// submitted to the model.
func ComposePrompt(situation string) string {
	blocks := make([]string, 0, len(Steps))
	for _, step := range Steps {
		instruction := strings.ReplaceAll(step.Instruction, situationPlaceholder, situation)
		blocks = append(blocks, instruction+"\n"+step.Tag)
	}
	return strings.Join(blocks, "\n")
}

// WrappedSteps returns the /api/steps payload: each instruction wrapped in
// <prompt> tags, paired with its structural tag.
func WrappedSteps() [][2]string {
	out := make([][2]string, 0, len(Steps))
	for _, step := range Steps {
		out = append(out, [2]string{"<prompt>" + step.Instruction + "</prompt>", step.Tag})
	}
	return out
}
