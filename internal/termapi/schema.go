package termapi

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/jhump/protoreflect/desc/protoparse"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
	_ "google.golang.org/protobuf/types/known/timestamppb"
)

const schemaFile = "mt5_term_api.proto"

//go:embed mt5_term_api.proto
var schemaSource string

var schema = mustLoadSchema(schemaSource)

func mustLoadSchema(source string) protoreflect.FileDescriptor {
	fd, err := loadSchema(source)
	if err != nil {
		panic(err)
	}
	return fd
}

// loadSchema 解析 proto 定义，时间戳等标准类型从全局注册表解析。
func loadSchema(source string) (protoreflect.FileDescriptor, error) {
	parser := protoparse.Parser{
		Accessor: protoparse.FileContentsFromMap(map[string]string{schemaFile: source}),
	}
	parsed, err := parser.ParseFiles(schemaFile)
	if err != nil {
		return nil, fmt.Errorf("termapi: 解析 %s 失败: %w", schemaFile, err)
	}

	fd, err := protodesc.NewFile(parsed[0].AsFileDescriptorProto(), protoregistry.GlobalFiles)
	if err != nil {
		return nil, fmt.Errorf("termapi: 构建 %s 描述符失败: %w", schemaFile, err)
	}
	return fd, nil
}

// LookupMethod 按完整方法名（/package.Service/Method）查找方法定义。
func LookupMethod(fullMethod string) (protoreflect.MethodDescriptor, bool) {
	service, method, ok := strings.Cut(strings.TrimPrefix(fullMethod, "/"), "/")
	if !ok {
		return nil, false
	}

	sd := schema.Services().ByName(protoreflect.FullName(service).Name())
	if sd == nil || string(sd.FullName()) != service {
		return nil, false
	}
	md := sd.Methods().ByName(protoreflect.Name(method))
	return md, md != nil
}

func messageDescriptor(name string) (protoreflect.MessageDescriptor, error) {
	md := schema.Messages().ByName(protoreflect.Name(name))
	if md == nil {
		return nil, fmt.Errorf("termapi: 未定义消息 %s", name)
	}
	return md, nil
}

// replyMessageName 由负载类型名得到响应信封的消息名，如 ConnectData -> ConnectReply。
func replyMessageName(dataName string) string {
	return strings.TrimSuffix(dataName, "Data") + "Reply"
}
