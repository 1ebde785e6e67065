package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBlogFilter(t *testing.T) {
	searchOr := []bson.M{
		{"title": primitive.Regex{Pattern: "alpine", Options: "i"}},
		{"content": primitive.Regex{Pattern: "alpine", Options: "i"}},
	}

	tests := []struct {
		name string
		q    ListQuery
		want bson.M
	}{
		{
			name: "empty query matches everything",
			q:    ListQuery{Page: 1, Limit: 10},
			want: bson.M{},
		},
		{
			name: "category only",
			q:    ListQuery{Category: "hiking"},
			want: bson.M{"category": "hiking"},
		},
		{
			name: "search only",
			q:    ListQuery{Search: "alpine"},
			want: bson.M{"$or": searchOr},
		},
		{
			name: "category and search combine as AND",
			q:    ListQuery{Category: "hiking", Search: "alpine"},
			want: bson.M{"category": "hiking", "$or": searchOr},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, blogFilter(tt.q))
		})
	}
}

func TestBlogFilterQuotesRegexMetacharacters(t *testing.T) {
	filter := blogFilter(ListQuery{Search: "a.b*c"})
	or, ok := filter["$or"].([]bson.M)
	if !ok || len(or) != 2 {
		t.Fatalf("unexpected filter shape: %v", filter)
	}
	re := or[0]["title"].(primitive.Regex)
	assert.Equal(t, `a\.b\*c`, re.Pattern)
	assert.Equal(t, "i", re.Options)
}
