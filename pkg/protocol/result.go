package protocol

// ResultKind discriminates the payload shapes the API can return. Every
// command declares the kind it expects; the decoder only ever produces a
// Result whose Kind matches that declaration.
type ResultKind int

const (
	KindBlogEntry ResultKind = iota + 1
	KindComments
	KindHacks
	KindContests
	KindRatingChanges
	KindStandings
	KindSubmissions
	KindProblemset
	KindRecentActions
	KindBlogEntries
	KindFriends
	KindUsers
)

func (k ResultKind) String() string {
	switch k {
	case KindBlogEntry:
		return "BlogEntry"
	case KindComments:
		return "Comments"
	case KindHacks:
		return "Hacks"
	case KindContests:
		return "Contests"
	case KindRatingChanges:
		return "RatingChanges"
	case KindStandings:
		return "Standings"
	case KindSubmissions:
		return "Submissions"
	case KindProblemset:
		return "Problemset"
	case KindRecentActions:
		return "RecentActions"
	case KindBlogEntries:
		return "BlogEntries"
	case KindFriends:
		return "Friends"
	case KindUsers:
		return "Users"
	default:
		return "Unknown"
	}
}

// Result is the tagged union over all decoded payload shapes. Callers
// type-switch on the concrete type (or check Kind) after a successful call:
//
//	res, err := c.Do(ctx, &commands.BlogEntryView{BlogEntryID: 82347})
//	if err != nil { ... }
//	entry := res.(*protocol.BlogEntry)
type Result interface {
	Kind() ResultKind
}

// List-shaped results are named slice types so they can carry their kind.
type (
	Comments      []Comment
	Hacks         []Hack
	Contests      []Contest
	RatingChanges []RatingChange
	Submissions   []Submission
	RecentActions []RecentAction
	BlogEntries   []BlogEntry
	Friends       []string
	Users         []User
)

func (*BlogEntry) Kind() ResultKind    { return KindBlogEntry }
func (Comments) Kind() ResultKind      { return KindComments }
func (Hacks) Kind() ResultKind         { return KindHacks }
func (Contests) Kind() ResultKind      { return KindContests }
func (RatingChanges) Kind() ResultKind { return KindRatingChanges }
func (*Standings) Kind() ResultKind    { return KindStandings }
func (Submissions) Kind() ResultKind   { return KindSubmissions }
func (*Problemset) Kind() ResultKind   { return KindProblemset }
func (RecentActions) Kind() ResultKind { return KindRecentActions }
func (BlogEntries) Kind() ResultKind   { return KindBlogEntries }
func (Friends) Kind() ResultKind       { return KindFriends }
func (Users) Kind() ResultKind         { return KindUsers }
