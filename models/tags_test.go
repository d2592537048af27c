package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagListValue(t *testing.T) {
	v, err := TagList{"work", "travel"}.Value()
	require.NoError(t, err)
	assert.Equal(t, "work,travel", v)

	// 空标签存为空字符串
	v, err = TagList(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, "", v)
}

func TestTagListScan(t *testing.T) {
	var tags TagList
	require.NoError(t, tags.Scan("work,travel"))
	assert.Equal(t, TagList{"work", "travel"}, tags)

	// 容忍空白和空项
	require.NoError(t, tags.Scan([]byte(" work , ,travel ")))
	assert.Equal(t, TagList{"work", "travel"}, tags)

	require.NoError(t, tags.Scan(""))
	assert.Len(t, tags, 0)

	require.NoError(t, tags.Scan(nil))
	assert.Nil(t, tags)

	assert.Error(t, tags.Scan(123))
}

func TestTagListMarshalJSON(t *testing.T) {
	// nil 序列化为 []，不是 null
	data, err := json.Marshal(TagList(nil))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))

	data, err = json.Marshal(TagList{"work"})
	require.NoError(t, err)
	assert.Equal(t, `["work"]`, string(data))

	// 嵌在模型里同样生效
	data, err = json.Marshal(Expense{Description: "Lunch"})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"tags":[]`)
}
