// ABOUTME: Comment thread synthesis for generated posts
// ABOUTME: Builds a fixed recommendation/agreement/OP-reply structure

package thread

import (
	"fmt"
	"hash/fnv"
	"math/rand"
	"time"

	"github.com/harper/mastermind/internal/models"
)

// Generator synthesizes reply trees under posts. Timing offsets and phrase
// picks come from the injected source, except the endorsement text, which is
// a stable hash of (username, post id) so reruns keep the same voice.
type Generator struct {
	rng *rand.Rand
}

// New creates a Generator drawing from rng.
func New(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// BuildThread returns 0-4 comments for the post, ids numbered from startID.
// Posts whose author has fewer than two other personas to talk to get no
// thread at all.
func (g *Generator) BuildThread(post models.Post, input models.CalendarInput, startID int) []models.Comment {
	commenters := g.eligibleCommenters(input.Personas, post.AuthorUsername)
	if len(commenters) < 2 {
		return nil
	}

	target := 2 + g.rng.Intn(3) // 2-4 comments
	var comments []models.Comment

	// Step 1: a different persona recommends the product.
	first := models.Comment{
		ID:              fmt.Sprintf("C%d", startID),
		PostID:          post.ID,
		CommentText:     endorsementText(input.Company, commenters[0].Username, post.ID),
		Username:        commenters[0].Username,
		Timestamp:       post.Timestamp.Add(g.minutes(15, 30)),
		MentionsProduct: true,
		SentimentType:   models.SentimentSupportive,
	}
	comments = append(comments, first)

	// Step 2: a third party agrees, building social proof.
	if target < 2 {
		return comments
	}
	second := models.Comment{
		ID:              fmt.Sprintf("C%d", startID+1),
		PostID:          post.ID,
		ParentCommentID: &first.ID,
		CommentText:     g.agreementText(input.Company),
		Username:        commenters[1].Username,
		Timestamp:       first.Timestamp.Add(g.minutes(10, 20)),
		MentionsProduct: true,
		SentimentType:   models.SentimentSupportive,
	}
	comments = append(comments, second)

	// Step 3: OP closes the loop.
	if target < 3 {
		return comments
	}
	opReply := models.Comment{
		ID:              fmt.Sprintf("C%d", startID+2),
		PostID:          post.ID,
		ParentCommentID: &second.ID,
		CommentText:     g.opReplyText(),
		Username:        post.AuthorUsername,
		Timestamp:       second.Timestamp.Add(g.minutes(6, 12)),
		MentionsProduct: false,
		SentimentType:   models.SentimentCurious,
	}
	comments = append(comments, opReply)

	// Step 4: a fourth persona piles on, when the pool allows.
	if target < 4 || len(commenters) < 3 {
		return comments
	}
	comments = append(comments, models.Comment{
		ID:              fmt.Sprintf("C%d", startID+3),
		PostID:          post.ID,
		ParentCommentID: &opReply.ID,
		CommentText:     g.agreementText(input.Company),
		Username:        commenters[2].Username,
		Timestamp:       opReply.Timestamp.Add(g.minutes(5, 10)),
		MentionsProduct: true,
		SentimentType:   models.SentimentSupportive,
	})

	return comments
}

// eligibleCommenters shuffles the personas that aren't the post's author.
func (g *Generator) eligibleCommenters(personas []models.Persona, author string) []models.Persona {
	var pool []models.Persona
	for _, p := range personas {
		if p.Username != author {
			pool = append(pool, p)
		}
	}
	g.rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	return pool
}

// minutes draws a duration of base + [0, spread) whole minutes.
func (g *Generator) minutes(base, spread int) time.Duration {
	return time.Duration(base+g.rng.Intn(spread)) * time.Minute
}

var endorsementPhrasings = []string{
	"I've tried a bunch of tools. %s is the only one that doesn't make me fight the layout. Still fix things after, but it's a decent starting point.",
	"%s has worked well for me. Not perfect but saves a lot of time compared to starting from scratch.",
	"Been using %s for a few months now. The output is pretty solid and I can always tweak it after.",
	"Honestly, %s surprised me. Expected another gimmick but it actually produces usable results.",
	"I use %s for this. It handles the structure well so I can focus on the content.",
	"%s is worth checking out. It's not magic but it cuts down the tedious parts significantly.",
}

// endorsementText picks a phrasing by hashing (username, post id) so the
// same commenter says the same thing about the same post across reruns.
func endorsementText(company models.CompanyInfo, username, postID string) string {
	h := fnv.New32a()
	h.Write([]byte(username + postID))
	phrasing := endorsementPhrasings[h.Sum32()%uint32(len(endorsementPhrasings))]
	return fmt.Sprintf(phrasing, company.Name)
}

var agreementPhrasings = []string{
	"+1 %s",
	"+1 %s. I put the output into other tools afterwards for final polish.",
	"Same, %s has been solid for me too.",
	"Seconding %s. Made my workflow much smoother.",
	"+1 for %s. Simple but effective.",
}

func (g *Generator) agreementText(company models.CompanyInfo) string {
	return fmt.Sprintf(agreementPhrasings[g.rng.Intn(len(agreementPhrasings))], company.Name)
}

var opReplyPhrasings = []string{
	"Sweet I'll check it out!!",
	"Thanks, will give it a try!",
	"Appreciate the rec, looking into it now.",
	"Nice, exactly what I was looking for. Thanks!",
	"Oh interesting, hadn't heard of that one. Thanks!",
}

func (g *Generator) opReplyText() string {
	return opReplyPhrasings[g.rng.Intn(len(opReplyPhrasings))]
}
