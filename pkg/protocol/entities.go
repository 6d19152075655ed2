// Copyright (C) 2026 thud
//
// This file is part of codeforces-api-go.
//
// codeforces-api-go is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// codeforces-api-go is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with codeforces-api-go.  If not, see <https://www.gnu.org/licenses/>.

package protocol

// Entity types returned by the Codeforces API, one struct per object kind
// documented at https://codeforces.com/apiHelp/objects. Fields the API may
// omit are pointers; everything else is always present in a well-formed
// response.

// ContestType classifies the scoring system of a contest.
type ContestType string

const (
	ContestTypeCF   ContestType = "CF"
	ContestTypeIOI  ContestType = "IOI"
	ContestTypeICPC ContestType = "ICPC"
)

// ContestPhase is the lifecycle phase of a contest.
type ContestPhase string

const (
	PhaseBefore            ContestPhase = "BEFORE"
	PhaseCoding            ContestPhase = "CODING"
	PhasePendingSystemTest ContestPhase = "PENDING_SYSTEM_TEST"
	PhaseSystemTest        ContestPhase = "SYSTEM_TEST"
	PhaseFinished          ContestPhase = "FINISHED"
)

// ParticipantType describes how a party took part in a contest.
type ParticipantType string

const (
	ParticipantContestant       ParticipantType = "CONTESTANT"
	ParticipantPractice         ParticipantType = "PRACTICE"
	ParticipantVirtual          ParticipantType = "VIRTUAL"
	ParticipantManager          ParticipantType = "MANAGER"
	ParticipantOutOfCompetition ParticipantType = "OUT_OF_COMPETITION"
)

// ProblemType distinguishes judged problems from free-form questions.
type ProblemType string

const (
	ProblemProgramming ProblemType = "PROGRAMMING"
	ProblemQuestion    ProblemType = "QUESTION"
)

// Verdict is a submission verdict. Absent while a submission is still
// in the queue.
type Verdict string

const (
	VerdictFailed                  Verdict = "FAILED"
	VerdictOK                      Verdict = "OK"
	VerdictPartial                 Verdict = "PARTIAL"
	VerdictCompilationError        Verdict = "COMPILATION_ERROR"
	VerdictRuntimeError            Verdict = "RUNTIME_ERROR"
	VerdictWrongAnswer             Verdict = "WRONG_ANSWER"
	VerdictPresentationError       Verdict = "PRESENTATION_ERROR"
	VerdictTimeLimitExceeded       Verdict = "TIME_LIMIT_EXCEEDED"
	VerdictMemoryLimitExceeded     Verdict = "MEMORY_LIMIT_EXCEEDED"
	VerdictIdlenessLimitExceeded   Verdict = "IDLENESS_LIMIT_EXCEEDED"
	VerdictSecurityViolated        Verdict = "SECURITY_VIOLATED"
	VerdictCrashed                 Verdict = "CRASHED"
	VerdictInputPreparationCrashed Verdict = "INPUT_PREPARATION_CRASHED"
	VerdictChallenged              Verdict = "CHALLENGED"
	VerdictSkipped                 Verdict = "SKIPPED"
	VerdictTesting                 Verdict = "TESTING"
	VerdictRejected                Verdict = "REJECTED"
)

// Testset names the test set a submission was judged against.
type Testset string

const (
	TestsetSamples    Testset = "SAMPLES"
	TestsetPretests   Testset = "PRETESTS"
	TestsetTests      Testset = "TESTS"
	TestsetChallenges Testset = "CHALLENGES"
	TestsetTests1     Testset = "TESTS1"
	TestsetTests2     Testset = "TESTS2"
	TestsetTests3     Testset = "TESTS3"
	TestsetTests4     Testset = "TESTS4"
	TestsetTests5     Testset = "TESTS5"
	TestsetTests6     Testset = "TESTS6"
	TestsetTests7     Testset = "TESTS7"
	TestsetTests8     Testset = "TESTS8"
	TestsetTests9     Testset = "TESTS9"
	TestsetTests10    Testset = "TESTS10"
)

// HackVerdict is the outcome of a hack attempt.
type HackVerdict string

const (
	HackSuccessful            HackVerdict = "HACK_SUCCESSFUL"
	HackUnsuccessful          HackVerdict = "HACK_UNSUCCESSFUL"
	HackInvalidInput          HackVerdict = "INVALID_INPUT"
	HackGeneratorIncompilable HackVerdict = "GENERATOR_INCOMPILABLE"
	HackGeneratorCrashed      HackVerdict = "GENERATOR_CRASHED"
	HackIgnored               HackVerdict = "IGNORED"
	HackTesting               HackVerdict = "TESTING"
	HackOther                 HackVerdict = "OTHER"
)

// ProblemResultType tells whether points for a problem can still change.
type ProblemResultType string

const (
	ProblemResultPreliminary ProblemResultType = "PRELIMINARY"
	ProblemResultFinal       ProblemResultType = "FINAL"
)

// User is a Codeforces user profile.
type User struct {
	Handle                  string  `json:"handle"`
	Email                   *string `json:"email,omitempty"`
	VkID                    *string `json:"vkId,omitempty"`
	OpenID                  *string `json:"openId,omitempty"`
	FirstName               *string `json:"firstName,omitempty"`
	LastName                *string `json:"lastName,omitempty"`
	Country                 *string `json:"country,omitempty"`
	City                    *string `json:"city,omitempty"`
	Organization            *string `json:"organization,omitempty"`
	Contribution            int64   `json:"contribution"`
	Rank                    *string `json:"rank,omitempty"`
	Rating                  *int64  `json:"rating,omitempty"`
	MaxRank                 *string `json:"maxRank,omitempty"`
	MaxRating               *int64  `json:"maxRating,omitempty"`
	LastOnlineTimeSeconds   int64   `json:"lastOnlineTimeSeconds"`
	RegistrationTimeSeconds int64   `json:"registrationTimeSeconds"`
	FriendOfCount           int64   `json:"friendOfCount"`
	Avatar                  string  `json:"avatar"`
	TitlePhoto              string  `json:"titlePhoto"`
}

// BlogEntry is a blog post. Content is only present when the issuing method
// requested the full entry.
type BlogEntry struct {
	ID                      int64    `json:"id"`
	OriginalLocale          string   `json:"originalLocale"`
	CreationTimeSeconds     int64    `json:"creationTimeSeconds"`
	AuthorHandle            string   `json:"authorHandle"`
	Title                   string   `json:"title"`
	Content                 *string  `json:"content,omitempty"`
	Locale                  string   `json:"locale"`
	ModificationTimeSeconds int64    `json:"modificationTimeSeconds"`
	AllowViewHistory        bool     `json:"allowViewHistory"`
	Tags                    []string `json:"tags"`
	Rating                  int64    `json:"rating"`
}

// Comment is a comment on a blog entry.
type Comment struct {
	ID                  int64  `json:"id"`
	CreationTimeSeconds int64  `json:"creationTimeSeconds"`
	CommentatorHandle   string `json:"commentatorHandle"`
	Locale              string `json:"locale"`
	Text                string `json:"text"`
	ParentCommentID     *int64 `json:"parentCommentId,omitempty"`
	Rating              int64  `json:"rating"`
}

// RecentAction is a recent site event; exactly one of BlogEntry or Comment
// accompanies it.
type RecentAction struct {
	TimeSeconds int64      `json:"timeSeconds"`
	BlogEntry   *BlogEntry `json:"blogEntry,omitempty"`
	Comment     *Comment   `json:"comment,omitempty"`
}

// RatingChange records one user's rating movement after a contest.
type RatingChange struct {
	ContestID               int64  `json:"contestId"`
	ContestName             string `json:"contestName"`
	Handle                  string `json:"handle"`
	Rank                    int64  `json:"rank"`
	RatingUpdateTimeSeconds int64  `json:"ratingUpdateTimeSeconds"`
	OldRating               int64  `json:"oldRating"`
	NewRating               int64  `json:"newRating"`
}

// Contest describes a contest.
type Contest struct {
	ID                  int64        `json:"id"`
	Name                string       `json:"name"`
	Type                ContestType  `json:"type"`
	Phase               ContestPhase `json:"phase"`
	DurationSeconds     int64        `json:"durationSeconds"`
	StartTimeSeconds    *int64       `json:"startTimeSeconds,omitempty"`
	RelativeTimeSeconds *int64       `json:"relativeTimeSeconds,omitempty"`
	PreparedBy          *string      `json:"preparedBy,omitempty"`
	WebsiteURL          *string      `json:"websiteUrl,omitempty"`
	Description         *string      `json:"description,omitempty"`
	Difficulty          *int64       `json:"difficulty,omitempty"`
	Kind                *string      `json:"kind,omitempty"`
	IcpcRegion          *string      `json:"icpcRegion,omitempty"`
	Country             *string      `json:"country,omitempty"`
	City                *string      `json:"city,omitempty"`
	Season              *string      `json:"season,omitempty"`
}

// Member is a single participant inside a party.
type Member struct {
	Handle string `json:"handle"`
}

// Party is a participant (individual or team) of a contest.
type Party struct {
	ContestID        *int64          `json:"contestId,omitempty"`
	Members          []Member        `json:"members"`
	ParticipantType  ParticipantType `json:"participantType"`
	TeamID           *int64          `json:"teamId,omitempty"`
	TeamName         *string         `json:"teamName,omitempty"`
	Ghost            bool            `json:"ghost"`
	Room             *int64          `json:"room,omitempty"`
	StartTimeSeconds *int64          `json:"startTimeSeconds,omitempty"`
}

// Problem describes a problem. ContestID and Index are absent for problems
// that do not belong to a contest.
type Problem struct {
	ContestID      *int64      `json:"contestId,omitempty"`
	ProblemsetName *string     `json:"problemsetName,omitempty"`
	Index          *string     `json:"index,omitempty"`
	Name           string      `json:"name"`
	Type           ProblemType `json:"type"`
	Points         *float64    `json:"points,omitempty"`
	Rating         *int64      `json:"rating,omitempty"`
	Tags           []string    `json:"tags"`
}

// ProblemStatistics carries the solve count for a problem.
type ProblemStatistics struct {
	ContestID   *int64  `json:"contestId,omitempty"`
	Index       *string `json:"index,omitempty"`
	SolvedCount int64   `json:"solvedCount"`
}

// Problemset is the payload of problemset.problems: problems paired with
// their statistics.
type Problemset struct {
	Problems          []Problem           `json:"problems"`
	ProblemStatistics []ProblemStatistics `json:"problemStatistics"`
}

// Submission describes one submitted solution.
type Submission struct {
	ID                  int64    `json:"id"`
	ContestID           *int64   `json:"contestId,omitempty"`
	CreationTimeSeconds int64    `json:"creationTimeSeconds"`
	RelativeTimeSeconds *int64   `json:"relativeTimeSeconds,omitempty"`
	Problem             Problem  `json:"problem"`
	Author              Party    `json:"author"`
	ProgrammingLanguage string   `json:"programmingLanguage"`
	Verdict             *Verdict `json:"verdict,omitempty"`
	Testset             Testset  `json:"testset"`
	PassedTestCount     int64    `json:"passedTestCount"`
	TimeConsumedMillis  int64    `json:"timeConsumedMillis"`
	MemoryConsumedBytes int64    `json:"memoryConsumedBytes"`
	Points              *float64 `json:"points,omitempty"`
}

// JudgeProtocol is the judge's record for a hack.
type JudgeProtocol struct {
	Manual   string `json:"manual"`
	Protocol string `json:"protocol"`
	Verdict  string `json:"verdict"`
}

// Hack describes a hack attempt during or after a contest.
type Hack struct {
	ID                  int64          `json:"id"`
	CreationTimeSeconds int64          `json:"creationTimeSeconds"`
	Hacker              Party          `json:"hacker"`
	Defender            Party          `json:"defender"`
	Verdict             *HackVerdict   `json:"verdict,omitempty"`
	Problem             Problem        `json:"problem"`
	Test                *string        `json:"test,omitempty"`
	JudgeProtocol       *JudgeProtocol `json:"judgeProtocol,omitempty"`
}

// ProblemResult is a party's score on one problem of a ranklist row.
type ProblemResult struct {
	Points                    float64           `json:"points"`
	Penalty                   *int64            `json:"penalty,omitempty"`
	RejectedAttemptCount      int64             `json:"rejectedAttemptCount"`
	Type                      ProblemResultType `json:"type"`
	BestSubmissionTimeSeconds *int64            `json:"bestSubmissionTimeSeconds,omitempty"`
}

// RanklistRow is one row of contest standings.
type RanklistRow struct {
	Party                     Party           `json:"party"`
	Rank                      int64           `json:"rank"`
	Points                    float64         `json:"points"`
	Penalty                   int64           `json:"penalty"`
	SuccessfulHackCount       int64           `json:"successfulHackCount"`
	UnsuccessfulHackCount     int64           `json:"unsuccessfulHackCount"`
	ProblemResults            []ProblemResult `json:"problemResults"`
	LastSubmissionTimeSeconds *int64          `json:"lastSubmissionTimeSeconds,omitempty"`
}

// Standings is the payload of contest.standings: the contest description,
// its problems and the requested ranklist rows.
type Standings struct {
	Contest  Contest       `json:"contest"`
	Problems []Problem     `json:"problems"`
	Rows     []RanklistRow `json:"rows"`
}
