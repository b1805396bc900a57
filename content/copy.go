package content

// Slide copy, one markdown document per content slide.

const aboutMD = `# About this course

A short, hands-on introduction to collecting data in the field.

By the end you will be able to:

- pick a collection method that fits your question
- explain the trade-off between depth and reach
- combine sources so one weak signal never decides the answer
`

const agendaMD = `# Agenda

1. **Data collection methods**: interviews, surveys, observation
2. **Triangulation**: combining methods to check your findings
3. **Practice**: two timed exercises

Use the arrow keys to move, ` + "`g`" + ` to jump anywhere.
`

const interviewsMD = `# Interviews

Structured conversations with individual participants.

- **Strength**: depth. Follow-up questions surface the *why* behind
  behaviour that a form can never capture.
- **Weakness**: cost. An hour per participant plus transcription means
  small samples.
- **Watch out**: people describe what they believe they do, not what
  they do.

> Rule of thumb: after five interviews on the same topic you have heard
> most of what the next five will say.
`

const surveysMD = `# Surveys

Fixed questions, many respondents.

- **Strength**: reach. Hundreds of answers for the cost of one
  interview.
- **Weakness**: no follow-up. A confusing question stays confusing for
  every respondent.
- **Watch out**: who answers is as important as what they answer.
  Self-selected samples skew towards the enthusiastic and the angry.

Pilot every survey on a handful of people before sending it wide.
`

const observationMD = `# Field Observation

Watching people work in their own environment.

- **Strength**: behaviour, not self-report. You see the workaround
  nobody thought worth mentioning.
- **Weakness**: slow, and presence changes behaviour for the first
  hour or two.
- **Watch out**: record what happened, separately from what you think
  it means. Interpretation comes later.
`

const whyTriangulateMD = `# Why triangulate

Every method lies in its own way. Interviews over-report intention,
surveys flatten nuance, observation catches only what happens while
you watch.

Triangulation runs the same question through two or three methods and
trusts only what survives the disagreement.

- Agreement across methods is strong evidence.
- Disagreement is not failure. It is usually the interesting finding.
`

const exerciseQuestionsMD = `# Exercise: draft interview questions

Pick a product you used today. In the time below, write **three**
open interview questions about it.

- No yes/no questions.
- No leading questions ("don't you find X annoying?").
- Each question should invite a story, not an opinion.

Start the countdown when you are ready.
`

const exerciseCritiqueMD = `# Exercise: critique a survey

Below is a real survey question. List every problem you can find
before the countdown ends.

> "How satisfied are you with our fast and reliable service?
>  (1) Very satisfied  (2) Satisfied  (3) Neutral"

Hint: there are at least four.
`

const recapMD = `# Recap

- **Interviews** buy depth, **surveys** buy reach, **observation**
  buys honesty. None of them buys all three.
- Choose the method from the question, never the other way round.
- Triangulate anything you intend to act on.

The jump grid (` + "`g`" + `) gets you back to any section for another look.
`
