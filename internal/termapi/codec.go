package termapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"time"

	"google.golang.org/grpc/encoding"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/dynamicpb"
)

const timestampName protoreflect.FullName = "google.protobuf.Timestamp"

// Codec 以 protobuf 线格式收发本包的消息结构体。
// 结构体的 json 标签即 proto 字段名。
type Codec struct{}

var _ encoding.Codec = Codec{}

func (Codec) Marshal(v any) ([]byte, error) {
	return Marshal(v)
}

func (Codec) Unmarshal(data []byte, v any) error {
	return Unmarshal(data, v)
}

// Name 与 gRPC 默认编解码器一致，content-type 为 application/grpc+proto。
func (Codec) Name() string {
	return "proto"
}

type namedMessage interface {
	messageName() string
}

func (*Reply[D]) messageName() string {
	return replyMessageName(reflect.TypeFor[D]().Name())
}

func descriptorOf(v any) (protoreflect.MessageDescriptor, error) {
	if n, ok := v.(namedMessage); ok {
		return messageDescriptor(n.messageName())
	}

	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.PkgPath() != reflect.TypeFor[Error]().PkgPath() {
		return nil, fmt.Errorf("termapi: 不支持的消息类型 %T", v)
	}
	return messageDescriptor(t.Name())
}

// Marshal 按 v 的类型找到对应消息并编码。
func Marshal(v any) ([]byte, error) {
	md, err := descriptorOf(v)
	if err != nil {
		return nil, err
	}
	return MarshalAs(md, v)
}

// MarshalAs 把任意可 JSON 序列化的值按 md 编码，字段按 json 名称匹配。
func MarshalAs(md protoreflect.MessageDescriptor, v any) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("termapi: 序列化 %s 失败: %w", md.FullName(), err)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var fields map[string]any
	if err := dec.Decode(&fields); err != nil {
		return nil, fmt.Errorf("termapi: 序列化 %s 失败: %w", md.FullName(), err)
	}

	msg := dynamicpb.NewMessage(md)
	if err := fill(msg, fields); err != nil {
		return nil, fmt.Errorf("termapi: 编码 %s 失败: %w", md.FullName(), err)
	}
	return proto.Marshal(msg)
}

// Unmarshal 把线格式数据解码到 v。
func Unmarshal(data []byte, v any) error {
	md, err := descriptorOf(v)
	if err != nil {
		return err
	}
	raw, err := DecodeJSON(md, data)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("termapi: 反序列化 %s 失败: %w", md.FullName(), err)
	}
	return nil
}

// DecodeJSON 按 md 解码线格式数据，输出与本包结构体 json 标签一致的 JSON。
func DecodeJSON(md protoreflect.MessageDescriptor, data []byte) (json.RawMessage, error) {
	msg := dynamicpb.NewMessage(md)
	if err := proto.Unmarshal(data, msg); err != nil {
		return nil, fmt.Errorf("termapi: 解码 %s 失败: %w", md.FullName(), err)
	}
	raw, err := json.Marshal(plainMessage(msg))
	if err != nil {
		return nil, fmt.Errorf("termapi: 解码 %s 失败: %w", md.FullName(), err)
	}
	return raw, nil
}

func fill(msg protoreflect.Message, fields map[string]any) error {
	md := msg.Descriptor()
	for name, raw := range fields {
		if raw == nil {
			continue
		}
		fd := md.Fields().ByName(protoreflect.Name(name))
		if fd == nil {
			return fmt.Errorf("%s 没有字段 %s", md.FullName(), name)
		}

		switch {
		case fd.IsList():
			items, ok := raw.([]any)
			if !ok {
				return fieldError(fd, raw)
			}
			list := msg.Mutable(fd).List()
			for _, item := range items {
				v, err := listValue(list, fd, item)
				if err != nil {
					return err
				}
				list.Append(v)
			}
		case fd.Message() != nil && fd.Message().FullName() == timestampName:
			t, err := parseTime(fd, raw)
			if err != nil {
				return err
			}
			if !t.IsZero() {
				setTimestamp(msg.Mutable(fd).Message(), t)
			}
		case fd.Message() != nil:
			nested, ok := raw.(map[string]any)
			if !ok {
				return fieldError(fd, raw)
			}
			if err := fill(msg.Mutable(fd).Message(), nested); err != nil {
				return err
			}
		default:
			v, err := scalarValue(fd, raw)
			if err != nil {
				return err
			}
			msg.Set(fd, v)
		}
	}
	return nil
}

func listValue(list protoreflect.List, fd protoreflect.FieldDescriptor, raw any) (protoreflect.Value, error) {
	if fd.Message() == nil {
		return scalarValue(fd, raw)
	}

	elem := list.NewElement()
	if fd.Message().FullName() == timestampName {
		t, err := parseTime(fd, raw)
		if err != nil {
			return protoreflect.Value{}, err
		}
		setTimestamp(elem.Message(), t)
		return elem, nil
	}

	nested, ok := raw.(map[string]any)
	if !ok {
		return protoreflect.Value{}, fieldError(fd, raw)
	}
	if err := fill(elem.Message(), nested); err != nil {
		return protoreflect.Value{}, err
	}
	return elem, nil
}

func scalarValue(fd protoreflect.FieldDescriptor, raw any) (protoreflect.Value, error) {
	switch fd.Kind() {
	case protoreflect.BoolKind:
		if b, ok := raw.(bool); ok {
			return protoreflect.ValueOfBool(b), nil
		}
	case protoreflect.StringKind:
		if s, ok := raw.(string); ok {
			return protoreflect.ValueOfString(s), nil
		}
	case protoreflect.Int32Kind, protoreflect.Sint32Kind, protoreflect.Sfixed32Kind:
		n, err := parseInt(fd, raw, 32)
		return protoreflect.ValueOfInt32(int32(n)), err
	case protoreflect.Int64Kind, protoreflect.Sint64Kind, protoreflect.Sfixed64Kind:
		n, err := parseInt(fd, raw, 64)
		return protoreflect.ValueOfInt64(n), err
	case protoreflect.EnumKind:
		n, err := parseInt(fd, raw, 32)
		return protoreflect.ValueOfEnum(protoreflect.EnumNumber(n)), err
	case protoreflect.Uint32Kind, protoreflect.Fixed32Kind:
		n, err := parseUint(fd, raw, 32)
		return protoreflect.ValueOfUint32(uint32(n)), err
	case protoreflect.Uint64Kind, protoreflect.Fixed64Kind:
		n, err := parseUint(fd, raw, 64)
		return protoreflect.ValueOfUint64(n), err
	case protoreflect.FloatKind:
		f, err := parseFloat(fd, raw, 32)
		return protoreflect.ValueOfFloat32(float32(f)), err
	case protoreflect.DoubleKind:
		f, err := parseFloat(fd, raw, 64)
		return protoreflect.ValueOfFloat64(f), err
	}
	return protoreflect.Value{}, fieldError(fd, raw)
}

func parseInt(fd protoreflect.FieldDescriptor, raw any, bits int) (int64, error) {
	num, ok := raw.(json.Number)
	if !ok {
		return 0, fieldError(fd, raw)
	}
	n, err := strconv.ParseInt(num.String(), 10, bits)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", fd.FullName(), err)
	}
	return n, nil
}

func parseUint(fd protoreflect.FieldDescriptor, raw any, bits int) (uint64, error) {
	num, ok := raw.(json.Number)
	if !ok {
		return 0, fieldError(fd, raw)
	}
	n, err := strconv.ParseUint(num.String(), 10, bits)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", fd.FullName(), err)
	}
	return n, nil
}

func parseFloat(fd protoreflect.FieldDescriptor, raw any, bits int) (float64, error) {
	num, ok := raw.(json.Number)
	if !ok {
		return 0, fieldError(fd, raw)
	}
	f, err := strconv.ParseFloat(num.String(), bits)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", fd.FullName(), err)
	}
	return f, nil
}

func parseTime(fd protoreflect.FieldDescriptor, raw any) (time.Time, error) {
	s, ok := raw.(string)
	if !ok {
		return time.Time{}, fieldError(fd, raw)
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s: %w", fd.FullName(), err)
	}
	return t, nil
}

func setTimestamp(msg protoreflect.Message, t time.Time) {
	fields := msg.Descriptor().Fields()
	msg.Set(fields.ByName("seconds"), protoreflect.ValueOfInt64(t.Unix()))
	msg.Set(fields.ByName("nanos"), protoreflect.ValueOfInt32(int32(t.Nanosecond())))
}

func fieldError(fd protoreflect.FieldDescriptor, raw any) error {
	return fmt.Errorf("%s 的值类型不匹配: %T", fd.FullName(), raw)
}

// plainMessage 把消息展开为可直接 JSON 序列化的值，未设置的字段省略。
func plainMessage(msg protoreflect.Message) any {
	md := msg.Descriptor()
	if md.FullName() == timestampName {
		fields := md.Fields()
		sec := msg.Get(fields.ByName("seconds")).Int()
		nsec := msg.Get(fields.ByName("nanos")).Int()
		return time.Unix(sec, nsec).UTC()
	}

	out := make(map[string]any, md.Fields().Len())
	msg.Range(func(fd protoreflect.FieldDescriptor, v protoreflect.Value) bool {
		if fd.IsMap() {
			return true
		}
		if fd.IsList() {
			list := v.List()
			items := make([]any, list.Len())
			for i := range items {
				items[i] = plainValue(fd, list.Get(i))
			}
			out[string(fd.Name())] = items
			return true
		}
		out[string(fd.Name())] = plainValue(fd, v)
		return true
	})
	return out
}

func plainValue(fd protoreflect.FieldDescriptor, v protoreflect.Value) any {
	switch fd.Kind() {
	case protoreflect.MessageKind, protoreflect.GroupKind:
		return plainMessage(v.Message())
	case protoreflect.EnumKind:
		return int32(v.Enum())
	default:
		return v.Interface()
	}
}
