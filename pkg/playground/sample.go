package playground

// SampleSchema seeds the schema pane of a fresh playground. The annotated
// Student.name field demonstrates the generator-reference convention.
const SampleSchema = `type Query {
  """random.uuid"""
  id: ID!
  student: Student!
}

type Student {
  id: ID!
  """name.firstName"""
  name: String!
}
`

// SampleOperations seeds the operations pane of a fresh playground.
const SampleOperations = `query test {
  id
  student {
    id
    name
  }
}
`
